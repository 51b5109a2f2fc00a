package serviceImp

import (
	"strings"
	"testing"

	"towergrow/entities"
)

type memGuideRepo struct {
	docs   []entities.GuideDocument
	chunks []entities.GuideChunk
}

func (m *memGuideRepo) CreateDoc(d *entities.GuideDocument) error {
	d.DocID = uint(len(m.docs) + 1)
	m.docs = append(m.docs, *d)
	return nil
}

func (m *memGuideRepo) BulkInsertChunks(cs []entities.GuideChunk) error {
	m.chunks = append(m.chunks, cs...)
	return nil
}

func (m *memGuideRepo) ListDocs() ([]entities.GuideDocument, error) { return m.docs, nil }

func (m *memGuideRepo) AllChunks() ([]entities.GuideChunk, error) { return m.chunks, nil }

func (m *memGuideRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error) {
	out := map[uint]entities.GuideDocument{}
	for _, d := range m.docs {
		for _, id := range ids {
			if d.DocID == id {
				out[d.DocID] = d
			}
		}
	}
	return out, nil
}

func TestChunkTextSplitsOnNewlines(t *testing.T) {
	text := strings.Repeat(strings.Repeat("x", 99)+"\n", 30)
	parts := chunkText(text, 1000)
	if len(parts) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(parts))
	}
	var total int
	for _, p := range parts {
		total += len(p)
	}
	if total != len(text) {
		t.Errorf("chunks lose content: %d of %d bytes", total, len(text))
	}
}

func TestChunkTextShortInput(t *testing.T) {
	parts := chunkText("a short guide", 1000)
	if len(parts) != 1 || parts[0] != "a short guide" {
		t.Errorf("got %v", parts)
	}
	if got := chunkText("", 1000); len(got) != 0 {
		t.Errorf("empty text should produce no chunks, got %v", got)
	}
}

func TestUpsertDocumentWithoutEmbedder(t *testing.T) {
	repo := &memGuideRepo{}
	svc := New(repo, nil)

	doc, n, err := svc.UpsertDocument("Lettuce pH", "lettuce", "Keep pH between 5.5 and 6.5.\nCheck EC weekly.", "")
	if err != nil {
		t.Fatalf("UpsertDocument: %v", err)
	}
	if doc.DocID == 0 {
		t.Error("doc id not assigned")
	}
	if n != len(repo.chunks) || n == 0 {
		t.Fatalf("chunk count %d, stored %d", n, len(repo.chunks))
	}
	for i, ch := range repo.chunks {
		if ch.Ord != i || ch.DocID != doc.DocID {
			t.Errorf("chunk %d: ord %d doc %d", i, ch.Ord, ch.DocID)
		}
		if ch.Embedding != nil {
			t.Error("no embedder, so no vectors")
		}
	}
}

func TestKeywordSearchFallback(t *testing.T) {
	repo := &memGuideRepo{}
	svc := New(repo, nil)

	if _, _, err := svc.UpsertDocument("Lettuce pH", "lettuce", "Keep pH between 5.5 and 6.5 for lettuce.", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.UpsertDocument("Basil light", "basil", "Basil wants 14 hours of light.", ""); err != nil {
		t.Fatal(err)
	}

	hits, err := svc.Search("lettuce", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || !strings.Contains(hits[0].Text, "lettuce") {
		t.Errorf("hits = %+v", hits)
	}

	hits, err = svc.Search("", 5)
	if err != nil || hits != nil {
		t.Errorf("empty query: %v, %v", hits, err)
	}
	hits, err = svc.Search("nothing matches this", 5)
	if err != nil || len(hits) != 0 {
		t.Errorf("no-match query: %v, %v", hits, err)
	}
}
