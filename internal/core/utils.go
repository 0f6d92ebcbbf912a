package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Links contains the relative url of the next page of a paged response.
type Links struct {
	Next *string `json:"next"`
}

var (
	timestampRe = regexp.MustCompile(`^\d{1,10}(\.\d{1,9})?$`)
	entityIDRe  = regexp.MustCompile(`^\d{1,10}\.\d{1,10}\.\d{1,10}$`)
	evmAddrRe   = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{40}$`)
	txIDRe      = regexp.MustCompile(`^\d{1,10}\.\d{1,10}\.\d{1,10}[-@]\d{1,10}[-.]\d{1,9}$`)
)

// IsTimestamp checks that s is a consensus timestamp ("seconds.nanos").
func IsTimestamp(s string) bool {
	return timestampRe.MatchString(s)
}

// IsEntityID checks that s looks like "shard.realm.num".
func IsEntityID(s string) bool {
	return entityIDRe.MatchString(s)
}

func IsEVMAddress(s string) bool {
	return evmAddrRe.MatchString(s)
}

// IsTransactionID accepts "payer-seconds-nanos" and "payer@seconds.nanos".
func IsTransactionID(s string) bool {
	return txIDRe.MatchString(s)
}

// ParseTimestamp converts a consensus timestamp into time.
func ParseTimestamp(s string) (time.Time, error) {
	if !IsTimestamp(s) {
		return time.Time{}, errors.Errorf("wrong timestamp format '%s'", s)
	}
	sec, nanos, _ := strings.Cut(s, ".")
	secs, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse seconds")
	}
	var ns int64
	if nanos != "" {
		nanos += strings.Repeat("0", 9-len(nanos))
		ns, err = strconv.ParseInt(nanos, 10, 64)
		if err != nil {
			return time.Time{}, errors.Wrap(err, "parse nanoseconds")
		}
	}
	return time.Unix(secs, ns).UTC(), nil
}

// FormatTimestamp converts time into a consensus timestamp.
func FormatTimestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + "." + leftPad(strconv.FormatInt(int64(t.Nanosecond()), 10), 9)
}

func leftPad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
