package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// diseaseProbabilityFloor drops long-tail suggestions the UI should not show.
const diseaseProbabilityFloor = 0.1

type plantID struct {
	endpoint string
	key      string
}

// NewPlantID builds a client for a Plant.id v3 compatible identification API.
func NewPlantID(endpoint, key string) Client {
	return &plantID{endpoint: endpoint, key: key}
}

func (c *plantID) Identify(imageBase64 string) (*IdentifyResult, error) {
	reqBody := map[string]any{
		"images":         []string{imageBase64},
		"health":         "all",
		"similar_images": true,
	}
	b, _ := json.Marshal(reqBody)

	url := strings.TrimRight(c.endpoint, "/") +
		"/v3/identification?details=common_names,description,taxonomy,treatment&language=en"
	req, _ := http.NewRequest("POST", url, bytes.NewReader(b))
	req.Header.Set("Api-Key", c.key)
	req.Header.Set("Content-Type", "application/json")

	httpc := &http.Client{Timeout: 25 * time.Second}
	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("plant.id request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("plant.id status %d", resp.StatusCode)
	}

	var out struct {
		Result struct {
			Classification struct {
				Suggestions []struct {
					Name        string  `json:"name"`
					Probability float64 `json:"probability"`
					Details     struct {
						CommonNames []string `json:"common_names"`
						Taxonomy    struct {
							Family string `json:"family"`
						} `json:"taxonomy"`
					} `json:"details"`
				} `json:"suggestions"`
			} `json:"classification"`
			IsHealthy struct {
				Binary *bool `json:"binary"`
			} `json:"is_healthy"`
			Disease struct {
				Suggestions []struct {
					Name        string  `json:"name"`
					Probability float64 `json:"probability"`
					Details     struct {
						Description string `json:"description"`
						Treatment   struct {
							Chemical   []string `json:"chemical"`
							Biological []string `json:"biological"`
							Prevention []string `json:"prevention"`
						} `json:"treatment"`
					} `json:"details"`
				} `json:"suggestions"`
			} `json:"disease"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("plant.id decode: %w", err)
	}

	sugg := out.Result.Classification.Suggestions
	if len(sugg) == 0 {
		return nil, ErrNotIdentified
	}
	top := sugg[0]

	common := top.Name
	if len(top.Details.CommonNames) > 0 {
		common = top.Details.CommonNames[0]
	}
	family := top.Details.Taxonomy.Family
	if family == "" {
		family = "Unknown"
	}

	res := &IdentifyResult{
		Species:        top.Name,
		ScientificName: top.Name,
		CommonName:     common,
		Family:         family,
		Confidence:     top.Probability,
		IsHealthy:      out.Result.IsHealthy.Binary,
	}
	for _, d := range out.Result.Disease.Suggestions {
		if d.Probability <= diseaseProbabilityFloor {
			continue
		}
		res.Diseases = append(res.Diseases, Disease{
			Name:        d.Name,
			Probability: d.Probability,
			Description: d.Details.Description,
			Treatment: DiseaseTreatment{
				Chemical:   d.Details.Treatment.Chemical,
				Biological: d.Details.Treatment.Biological,
				Prevention: d.Details.Treatment.Prevention,
			},
		})
	}
	return res, nil
}
