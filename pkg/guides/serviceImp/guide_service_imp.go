package serviceImp

import (
	"math"
	"sort"
	"strings"

	"towergrow/entities"
	"towergrow/pkg/guides/embedder"
	"towergrow/pkg/guides/repository"
	"towergrow/pkg/guides/service"
)

type svc struct {
	r   repository.GuideRepository
	emb *embedder.Client
}

// New builds the guide service. emb may be nil, in which case search
// falls back to keyword matching and ingested chunks carry no vectors.
func New(r repository.GuideRepository, emb *embedder.Client) service.GuideService {
	return &svc{r: r, emb: emb}
}

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDocument, int, error) {
	d := &entities.GuideDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		if v, err := s.emb.Embed(chs); err == nil {
			embs = v
		}
		// on error keep chunks without vectors, keyword search still works
	}

	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		var vec []byte
		if embs != nil && i < len(embs) {
			vec = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.GuideChunk{
			DocID:     d.DocID,
			Ord:       i,
			Text:      chs[i],
			Embedding: vec,
		}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.GuideChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			vec := embedder.BytesToFloats(ch.Embedding)
			if len(vec) != len(qvec) || len(vec) == 0 {
				continue
			}
			if sc := cosine(qvec, vec); sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	} else {
		qlow := strings.ToLower(q)
		for _, ch := range chunks {
			if strings.Contains(strings.ToLower(ch.Text), qlow) {
				list = append(list, scored{ch, 1})
			}
		}
	}

	if len(list) == 0 {
		return nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		va, vb := float64(a[i]), float64(b[i])
		dot += va * vb
		na += va * va
		nb += vb * vb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (s *svc) DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error) {
	return s.r.DocsByIDs(ids)
}

func (s *svc) ListDocs() ([]entities.GuideDocument, error) { return s.r.ListDocs() }
