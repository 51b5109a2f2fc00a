package ai

import "hash/fnv"

type mockClient struct{}

// NewMock returns a deterministic offline client, used when no API key is
// configured. The same image always yields the same result.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Identify(imageBase64 string) (*IdentifyResult, error) {
	h := fnv.New32a()
	h.Write([]byte(imageBase64))
	n := h.Sum32()

	healthy := n%5 != 0 // roughly one in five mock scans finds an issue
	conf := 0.70 + float64(n%25)/100.0

	res := &IdentifyResult{
		Species:        "Lactuca sativa",
		ScientificName: "Lactuca sativa",
		CommonName:     "Lettuce",
		Family:         "Asteraceae",
		Confidence:     conf,
		IsHealthy:      &healthy,
	}
	if !healthy {
		res.Diseases = []Disease{{
			Name:        "nutrient deficiency",
			Probability: 0.35 + float64(n%30)/100.0,
			Description: "Yellowing between leaf veins suggests a nitrogen or magnesium shortfall.",
			Treatment: DiseaseTreatment{
				Chemical:   []string{"Top up the nutrient reservoir to the target EC."},
				Biological: []string{"Add a balanced organic nutrient mix."},
				Prevention: []string{"Log EC readings regularly and keep pH between 5.8 and 6.3."},
			},
		}}
	}
	return res, nil
}
