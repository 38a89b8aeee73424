package guidance

//*******************************************
// instructions
//*******************************************

// Instruction is one speakable navigation step. Description is meant for
// on-screen display, Spoken for text-to-speech playback.
type Instruction struct {
	Id          string   `json:"id"`
	Step        int      `json:"step"`
	Action      Action   `json:"action"`
	Description string   `json:"description"`
	Spoken      string   `json:"spoken"`
	Distance    float64  `json:"distance,omitempty"`
	Landmark    string   `json:"landmark,omitempty"`
	Priority    Priority `json:"priority"`
	// NodeId anchors the instruction to the path node that produced it.
	NodeId string `json:"node_id,omitempty"`
}
