package entities

// CropType is a static catalog entry. The catalog is loaded once at boot and
// never mutated afterwards; slots embed a copy of their assigned crop.
type CropType struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	GrowDays int    `json:"grow_days"`
	Color    string `json:"color"`
}
