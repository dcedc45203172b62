package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fileRow is the gorm mapping of the files table.
type fileRow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:text"`
	Category   string    `gorm:"type:text"`
	Path       string    `gorm:"type:text"`
	Size       int64     `gorm:"not null;default:0"`
	UploadDate time.Time `gorm:"autoCreateTime"`
}

func (fileRow) TableName() string {
	return "files"
}

func (r fileRow) toRecord() FileRecord {
	return FileRecord{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		Path:       r.Path,
		Size:       r.Size,
		UploadDate: r.UploadDate,
	}
}

// OpenMySQL opens a MySQL database through gorm and runs the files table
// migration.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := openGorm(mysql.Open(dsn))
	if err != nil {
		return nil, fmt.Errorf("mysql: %w", err)
	}
	return db, nil
}

// openGorm opens dialector with the shared pool settings and migrates the
// files table.
func openGorm(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&fileRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate files table: %w", err)
	}

	return db, nil
}

// GormFileRepo implements FileStore on any gorm dialect.
type GormFileRepo struct {
	db *gorm.DB
}

// NewGormFileRepo creates a new GormFileRepo.
func NewGormFileRepo(db *gorm.DB) *GormFileRepo {
	return &GormFileRepo{db: db}
}

// Begin starts a transaction-backed batch.
func (r *GormFileRepo) Begin(ctx context.Context) (FileBatch, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin batch: %w", tx.Error)
	}
	return &gormTx{tx: tx}, nil
}

// ListAll returns all file records. The scan is unordered.
func (r *GormFileRepo) ListAll(ctx context.Context) ([]FileRecord, error) {
	var rows []fileRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}

	records := make([]FileRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

// Ping checks the database connection.
func (r *GormFileRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (r *GormFileRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormTx struct {
	tx *gorm.DB
}

func (b *gormTx) Insert(ctx context.Context, record *FileRecord) error {
	row := fileRow{
		Name:     record.Name,
		Category: record.Category,
		Path:     record.Path,
		Size:     record.Size,
	}
	if err := b.tx.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}

	record.ID = row.ID
	record.UploadDate = row.UploadDate
	return nil
}

func (b *gormTx) Commit() error {
	if err := b.tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (b *gormTx) Rollback() error {
	if err := b.tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to roll back batch: %w", err)
	}
	return nil
}

var (
	_ FileStore = (*FileRepo)(nil)
	_ FileStore = (*GormFileRepo)(nil)
)
