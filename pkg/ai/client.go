package ai

import "errors"

// ErrNotIdentified means the service returned no species suggestion for the
// image; callers should ask for a clearer photo rather than retry.
var ErrNotIdentified = errors.New("no plant species identified")

// DiseaseTreatment groups suggested treatments per approach.
type DiseaseTreatment struct {
	Chemical   []string `json:"chemical"`
	Biological []string `json:"biological"`
	Prevention []string `json:"prevention"`
}

// Disease is one health-assessment suggestion above the probability floor.
type Disease struct {
	Name        string           `json:"name"`
	Probability float64          `json:"probability"`
	Description string           `json:"description,omitempty"`
	Treatment   DiseaseTreatment `json:"treatment"`
}

// IdentifyResult is the species + health outcome for one image.
type IdentifyResult struct {
	Species        string    `json:"species"`
	ScientificName string    `json:"scientific_name"`
	CommonName     string    `json:"common_name"`
	Family         string    `json:"family"`
	Confidence     float64   `json:"confidence"` // [0,1]
	IsHealthy      *bool     `json:"is_healthy"` // nil = no assessment
	Diseases       []Disease `json:"diseases"`
}

// Client identifies a plant and assesses its health from a base64 image.
type Client interface {
	Identify(imageBase64 string) (*IdentifyResult, error)
}
