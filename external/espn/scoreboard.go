package espn

type scoreboardEnvelope struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Date         string             `json:"date"`
	Status       eventStatus        `json:"status"`
	Competitions []eventCompetition `json:"competitions"`
}

type eventStatus struct {
	Type eventStatusType `json:"type"`
}

type eventStatusType struct {
	Name      string `json:"name"`
	State     string `json:"state"` // pre, in, post
	Completed bool   `json:"completed"`
}

type eventCompetition struct {
	ID          string            `json:"id"`
	Competitors []eventCompetitor `json:"competitors"`
}

type eventCompetitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"` // API sends scores as strings
	Team     team   `json:"team"`
}

type team struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}
