package storage

// Answer sources recorded with every turn.
const (
	SourceJSON     = "JSON"
	SourceGemini   = "Gemini"
	SourceFallback = "Fallback"
)

// Turn is one logged question and answer within a session.
type Turn struct {
	ID            int64  `json:"id"`
	SessionID     string `json:"session_id"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	Source        string `json:"source"`
	Origin        string `json:"origin,omitempty"` // strategy tag when Source is JSON
	IsAIAugmented bool   `json:"is_ai_augmented"`
	CreatedAt     int64  `json:"created_at"` // Unix milliseconds
}
