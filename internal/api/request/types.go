package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Age          int    `json:"age"`
}

// StartQuizRequest is the request body for starting a quiz session
type StartQuizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// AnswerRequest is the request body for answering a quiz question
type AnswerRequest struct {
	Option int `json:"option"`
}

// StartHanoiRequest is the request body for starting a Tower of Hanoi session
type StartHanoiRequest struct {
	Disks  int    `json:"disks,omitempty"`
	Policy string `json:"policy,omitempty"`
}

// MoveRequest is the request body for moving a disk
type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// StartScrambleRequest is the request body for starting a word scramble
// session
type StartScrambleRequest struct {
	Difficulty string `json:"difficulty"`
}

// GuessRequest is the request body for guessing a scrambled word
type GuessRequest struct {
	Guess string `json:"guess"`
}
