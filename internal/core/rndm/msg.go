package rndm

import (
	"encoding/base64"

	"github.com/ledgerscope/explorer/internal/core"
)

// TopicMessages returns n messages of the topic starting from sequence number 1.
func TopicMessages(topic string, n int) (ret []*core.TopicMessage) {
	for i := 0; i < n; i++ {
		ret = append(ret, &core.TopicMessage{
			ConsensusTimestamp: timestamp(),
			TopicID:            topic,
			Message:            base64.StdEncoding.EncodeToString([]byte(String(16))),
			PayerAccountID:     EntityID(),
			RunningHash:        Hex(48)[2:],
			SequenceNumber:     int64(i + 1),
		})
	}
	return ret
}

func NetworkNodes(n int) (ret []*core.NetworkNode) {
	for i := 0; i < n; i++ {
		ret = append(ret, &core.NetworkNode{
			NodeID:        int64(i),
			NodeAccountID: EntityID(),
			Description:   String(12),
			Stake:         int64(i+1) * 1_000_000,
			Timestamp:     core.TimestampRange{From: timestamp()},
		})
	}
	return ret
}
