package output

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ccollicutt/imagelinks/pkg/links"
)

// DefaultBatchSize is the number of rows per INSERT statement.
const DefaultBatchSize = 500

// uniqueIndex covers the natural key of a record.
const uniqueIndex = "UNIQUE_ENTRIES_IN_IMAGES"

// ImageRow is a record as stored in the images table.
type ImageRow struct {
	ID            uint      `gorm:"column:ID;primaryKey;autoIncrement"`
	SpecificID    string    `gorm:"column:Specific_ID;type:VARCHAR(50);not null;uniqueIndex:UNIQUE_ENTRIES_IN_IMAGES,priority:1"`
	Link          string    `gorm:"column:Link;type:VARCHAR(150);not null"`
	LinkType      string    `gorm:"column:Link_Type;type:VARCHAR(50);not null;uniqueIndex:UNIQUE_ENTRIES_IN_IMAGES,priority:2"`
	RawLink       string    `gorm:"column:Raw_Link;type:VARCHAR(150);not null"`
	DatePosted    time.Time `gorm:"column:Date_Posted;type:DATETIME;not null;uniqueIndex:UNIQUE_ENTRIES_IN_IMAGES,priority:3"`
	UserPosted    string    `gorm:"column:User_Posted;type:VARCHAR(50);not null;uniqueIndex:UNIQUE_ENTRIES_IN_IMAGES,priority:4"`
	ChannelPosted string    `gorm:"column:Channel_Posted;type:VARCHAR(50);not null;uniqueIndex:UNIQUE_ENTRIES_IN_IMAGES,priority:5"`
	MessageText   string    `gorm:"column:Message_Text;type:TEXT;not null;uniqueIndex:UNIQUE_ENTRIES_IN_IMAGES,priority:6"`
}

// TableName sets the table name used by GORM.
func (ImageRow) TableName() string {
	return "images"
}

// NewImageRow converts a record to a table row. The message is stripped of
// line breaks whether or not the record went through links.Filter.
func NewImageRow(r links.Record) ImageRow {
	return ImageRow{
		SpecificID:    r.SpecificID,
		Link:          r.Link,
		LinkType:      r.Type.String(),
		RawLink:       r.RawLink(),
		DatePosted:    r.PostedAt.UTC(),
		UserPosted:    r.User,
		ChannelPosted: r.Channel,
		MessageText:   links.StripLineBreaks(r.Message),
	}
}

// SQLWriter upserts records into an SQLite database file.
type SQLWriter struct {
	path      string
	batchSize int
	log       logrus.FieldLogger
}

// NewSQLWriter creates a writer for the database at path.
func NewSQLWriter(path string, batchSize int, log logrus.FieldLogger) *SQLWriter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &SQLWriter{
		path:      path,
		batchSize: batchSize,
		log:       log.WithField("component", "sqlite"),
	}
}

// Name returns the format name.
func (w *SQLWriter) Name() string {
	return string(FormatSQL)
}

// Write creates the table and index if needed, then inserts every record,
// replacing any row with the same natural key. Returns the rows affected.
func (w *SQLWriter) Write(ctx context.Context, records []links.Record) (int, error) {
	db, err := gorm.Open(sqlite.Open(w.path), &gorm.Config{
		Logger: logger.New(w.log, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return 0, fmt.Errorf("opening database %s: %w", w.path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("getting sql.DB instance: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			w.log.WithError(err).Error("Error closing database")
		}
	}()

	affected, err := upsertRows(db.WithContext(ctx), records, w.batchSize)
	if err != nil {
		return 0, err
	}

	w.log.WithFields(logrus.Fields{
		"path": w.path,
		"rows": affected,
	}).Debug("Upserted links")

	return int(affected), nil
}

// upsertRows migrates the schema and writes records in one transaction.
func upsertRows(db *gorm.DB, records []links.Record, batchSize int) (int64, error) {
	if err := db.AutoMigrate(&ImageRow{}); err != nil {
		return 0, fmt.Errorf("creating images table: %w", err)
	}

	if len(records) == 0 {
		return 0, nil
	}

	rows := uniqueRows(records)

	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Insert{Modifier: "OR REPLACE"}).CreateInBatches(&rows, batchSize)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, fmt.Errorf("inserting links: %w", err)
	}

	return affected, nil
}

// uniqueRows converts records to rows, keeping the last record for each
// natural key the way INSERT OR REPLACE would.
func uniqueRows(records []links.Record) []ImageRow {
	rows := make([]ImageRow, 0, len(records))
	index := make(map[links.Key]int, len(records))

	for _, r := range records {
		key := r.Key()
		key.Message = links.StripLineBreaks(key.Message)

		if i, ok := index[key]; ok {
			rows[i] = NewImageRow(r)
			continue
		}
		index[key] = len(rows)
		rows = append(rows, NewImageRow(r))
	}

	return rows
}
