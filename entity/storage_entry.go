package entity

// StorageEntry is one row of the durable key-value store backing the
// session. Value holds a JSON-serialized blob; Key is one of the fixed
// session keys ("user", "cart").
type StorageEntry struct {
	Key   string `gorm:"primaryKey;column:key" json:"key"`
	Value string `gorm:"column:value" json:"value"`
}
