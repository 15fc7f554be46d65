package theme

// MemoryStorage is a map-backed Storage, a stand-in for browser local storage.
type MemoryStorage map[string]string

// GetItem returns the stored value and whether the key exists.
func (m MemoryStorage) GetItem(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SetItem stores the value under the key.
func (m MemoryStorage) SetItem(key, value string) error {
	m[key] = value
	return nil
}

// MirroredStorage keeps one preference in several stores. The primary store is authoritative,
// mirrors are written on a best-effort basis and read only when the primary has no entry.
type MirroredStorage struct {
	primary Storage
	mirrors []Storage
}

// Mirror makes a storage writing to primary and to every mirror.
func Mirror(primary Storage, mirrors ...Storage) *MirroredStorage {
	return &MirroredStorage{primary: primary, mirrors: mirrors}
}

// GetItem reads the primary store first. A value found only in a mirror is copied back to
// the primary, so both agree from now on.
func (m *MirroredStorage) GetItem(key string) (string, bool) {
	if v, ok := m.primary.GetItem(key); ok {
		return v, true
	}
	for _, s := range m.mirrors {
		if v, ok := s.GetItem(key); ok {
			_ = m.primary.SetItem(key, v)
			return v, true
		}
	}
	return "", false
}

// SetItem writes the primary store and then the mirrors. Only a primary failure is returned,
// in that case mirrors are not touched.
func (m *MirroredStorage) SetItem(key, value string) error {
	if err := m.primary.SetItem(key, value); err != nil {
		return err
	}
	for _, s := range m.mirrors {
		_ = s.SetItem(key, value) // best effort
	}
	return nil
}
