package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ChunkVector struct {
	Id        string          `gorm:"type:varchar(128);primaryKey"`
	Namespace string          `gorm:"type:varchar(32);index"`
	Document  string          `gorm:"type:text"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	Metadata  datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (ChunkVector) TableName() string {
	return "chunk_vectors"
}
