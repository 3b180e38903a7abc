package response

// PreferencesResponse carries the agent's saved preferences as an opaque map;
// the keys are whatever the planning agent chose to remember.
type PreferencesResponse struct {
	Preferences map[string]any `json:"preferences"`
}

func FromPreferences(prefs map[string]any) *PreferencesResponse {
	if prefs == nil {
		prefs = map[string]any{}
	}
	return &PreferencesResponse{Preferences: prefs}
}
