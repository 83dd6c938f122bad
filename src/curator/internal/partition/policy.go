package partition

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
)

type Policy string

const (
	First  Policy = "first"
	Last   Policy = "last"
	Random Policy = "random"
)

func ParsePolicy(value string) (Policy, error) {
	switch policy := Policy(strings.ToLower(strings.TrimSpace(value))); policy {
	case First, Last, Random:
		return policy, nil
	default:
		return "", mark.Messagef(UnknownPolicy, "Unknown partition policy %q, expected first, last or random", value)
	}
}

// Select picks count names out of files, which must already be sorted.
// First and Last return every file when there are fewer than count.
// Random samples without replacement and fails when there are too few.
func Select(files []string, policy Policy, count int, rng *rand.Rand) ([]string, error) {
	if count < 1 {
		return nil, mark.Messagef(InvalidCount, "Count must be at least 1, got %d", count)
	}

	n := len(files)
	take := count
	if take > n {
		take = n
	}

	switch policy {
	case First:
		return append([]string{}, files[:take]...), nil

	case Last:
		return append([]string{}, files[n-take:]...), nil

	case Random:
		if count > n {
			return nil, mark.Messagef(InsufficientFiles, "Cannot sample %d files out of %d", count, n)
		}

		selected := []string{}
		for _, i := range rng.Perm(n)[:count] {
			selected = append(selected, files[i])
		}
		sort.Strings(selected)
		return selected, nil

	default:
		return nil, mark.Messagef(UnknownPolicy, "Unknown partition policy %q", string(policy))
	}
}
