package archive

import "time"

// RunRecord is one row of the run_records table: the parameters and
// top-line results of a single network-stats invocation.
type RunRecord struct {
	ID                      int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RunUUID                 string    `gorm:"column:run_uuid;type:varchar(64);uniqueIndex"`
	NetworkPath             string    `gorm:"column:network_path;type:varchar(512)"`
	Dt                      float64   `gorm:"column:dt"`
	Seed                    uint64    `gorm:"column:seed"`
	Significance            float64   `gorm:"column:significance"`
	EventCount              int64     `gorm:"column:event_count"`
	NodeCount               int64     `gorm:"column:node_count"`
	LargestComponentRoot    string    `gorm:"column:largest_component_root;type:varchar(128)"`
	LargestComponentEvents  float64   `gorm:"column:largest_component_events"`
	LargestComponentNodes   float64   `gorm:"column:largest_component_nodes"`
	WeaklyComponentCount    int64     `gorm:"column:weakly_component_count"`
	LongestLifetimeRoot     string    `gorm:"column:longest_lifetime_root;type:varchar(128)"`
	LongestLifetimeDuration float64   `gorm:"column:longest_lifetime_duration"`
	DurationMillis          int64     `gorm:"column:duration_millis"`
	CreatedAt               time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for RunRecord.
func (RunRecord) TableName() string {
	return "run_records"
}
