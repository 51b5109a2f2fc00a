package service

import "towergrow/entities"

type GuideService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDocument, int, error)
	Search(query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error)
	ListDocs() ([]entities.GuideDocument, error)
}
