package domain

// RecapEntry summarises the recent activity of one channel.
type RecapEntry struct {
	Channel         Channel
	SummaryText     string
	MessageCount    int
	Participants    int
	Threads         int
	LatestTimestamp string
	Preview         []Message
}
