package main

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var defaultDomains = []string{
	"google.com", "yahoo.com", "something.com", "whatever.com", "cnn.com",
	"youtube.com", "chatgpt.com", "akumina.com", "test.com", "somethingelse.com",
}

// GenerateKeys returns total keys shaped "<domain>:<uuid>:<uuid>:<uuid>:<uuid>".
// The first uuid is fixed per domain, so keys share long prefixes.
func GenerateKeys(seed int64, total int, domains []string) []string {
	if len(domains) == 0 {
		domains = defaultDomains
	}
	var (
		fake     = gofakeit.New(seed)
		prefixes = make([]string, len(domains))
		keys     = make([]string, total)
		sb       strings.Builder
	)

	for i, domain := range domains {
		prefixes[i] = domain + ":" + fake.UUID()
	}

	for i := range keys {
		sb.Reset()
		sb.WriteString(prefixes[fake.Number(0, len(prefixes)-1)])
		for j := 0; j < 3; j++ {
			sb.WriteByte(':')
			sb.WriteString(fake.UUID())
		}
		keys[i] = sb.String()
	}

	return keys
}
