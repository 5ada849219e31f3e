package catalog

// Exercise is the catalog entry for a single exercise, as served by the
// exercise catalog service.
type Exercise struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Equipment      string   `json:"equipment,omitempty"`
	PrimaryMuscles []string `json:"primaryMuscles"`
}
