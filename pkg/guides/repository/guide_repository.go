package repository

import "towergrow/entities"

type GuideRepository interface {
	CreateDoc(d *entities.GuideDocument) error
	BulkInsertChunks(cs []entities.GuideChunk) error
	ListDocs() ([]entities.GuideDocument, error)
	AllChunks() ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error)
}
