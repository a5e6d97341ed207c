package dataset

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/henri123lemoine/tabula/internal/table"
)

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Edsger", "Barbara", "Donald", "Frances", "Ken", "Margaret", "Dennis", "Radia", "John"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Knuth", "Allen", "Thompson", "Hamilton", "Ritchie", "Perlman", "Backus"}
)

// Sample returns n deterministic demo users with id, name, age and email.
// The first three rows are Alice, Bob and Charlie; every seventh generated
// user has no age.
func Sample(n int, seed int64) []table.Record {
	if n <= 0 {
		return []table.Record{}
	}

	rng := rand.New(rand.NewSource(seed))
	records := make([]table.Record, 0, n)

	fixed := []struct {
		name string
		age  int
	}{
		{"Alice", 25},
		{"Bob", 30},
		{"Charlie", 22},
	}
	for _, f := range fixed {
		if len(records) == n {
			return records
		}
		records = append(records, table.Record{
			"id":    newID(rng),
			"name":  f.name,
			"age":   f.age,
			"email": strings.ToLower(f.name) + "@example.com",
		})
	}

	for i := 0; len(records) < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		rec := table.Record{
			"id":    newID(rng),
			"name":  first + " " + last,
			"email": fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
		}
		if (i+1)%7 != 0 {
			rec["age"] = 18 + rng.Intn(70)
		}
		records = append(records, rec)
	}
	return records
}

func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
