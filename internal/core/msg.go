package core

type TopicMessage struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	TopicID            string `json:"topic_id"`
	Message            string `json:"message"`
	PayerAccountID     string `json:"payer_account_id"`
	RunningHash        string `json:"running_hash"`
	SequenceNumber     int64  `json:"sequence_number"`
}

type TopicMessagesResponse struct {
	Messages []*TopicMessage `json:"messages"`
	Links    Links           `json:"links"`
}
