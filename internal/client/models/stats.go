package models

// Stats holds the aggregate verification counts returned by the remote
// service. The client reads them wholesale and only derives percentages at
// render time.
type Stats struct {
	Total         int `json:"total_verifications"`
	AIDetected    int `json:"ai_detected"`
	HumanDetected int `json:"human_detected"`
	TextCount     int `json:"text_count"`
	ImageCount    int `json:"image_count"`
	VideoCount    int `json:"video_count"`
}

// CountFor returns the per-kind verification count.
func (s Stats) CountFor(kind ContentKind) int {
	switch kind {
	case KindText:
		return s.TextCount
	case KindImage:
		return s.ImageCount
	case KindVideo:
		return s.VideoCount
	}
	return 0
}
