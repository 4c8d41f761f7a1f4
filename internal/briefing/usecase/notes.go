package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/vault"
)

var (
	noteDateRe  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	noteMonthRe = regexp.MustCompile(`(\d{4}-\d{2})`)
)

// noteDate parses the YYYY-MM-DD prefix of a daily note name.
func noteDate(name string, loc *time.Location) (time.Time, bool) {
	m := noteDateRe.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(briefing.DateLayout, m[1], loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// recentNotes keeps notes dated on or after the start of the day
// DaysToAnalyze days before now.
func recentNotes(docs []vault.Document, now time.Time, days int) []vault.Document {
	y, m, d := now.Date()
	cutoff := time.Date(y, m, d-days, 0, 0, 0, 0, now.Location())

	var out []vault.Document
	for _, doc := range docs {
		date, ok := noteDate(doc.Name(), now.Location())
		if ok && !date.Before(cutoff) {
			out = append(out, doc)
		}
	}
	return out
}

// groupByMonth groups notes by the first YYYY-MM in their name. Notes
// without one are skipped.
func groupByMonth(docs []vault.Document) (map[string][]vault.Document, []string) {
	groups := map[string][]vault.Document{}
	for _, doc := range docs {
		m := noteMonthRe.FindString(doc.Name())
		if m == "" {
			continue
		}
		groups[m] = append(groups[m], doc)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return groups, keys
}

// aggregate reads docs and joins them under per-note headings.
func (uc *implUseCase) aggregate(ctx context.Context, docs []vault.Document) (string, error) {
	var b strings.Builder
	for _, doc := range docs {
		content, err := uc.store.Read(ctx, doc.Path)
		if err != nil {
			return "", fmt.Errorf("read note %s: %w", doc.Path, err)
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", doc.Name(), content)
	}
	return b.String(), nil
}

// formattedTasks fetches and renders the relevant tasks. A failure is
// reported through the notifier and yields no tasks.
func (uc *implUseCase) formattedTasks(ctx context.Context) (string, int) {
	buckets, err := uc.tasks.GetRelevantTasks(ctx)
	if err != nil {
		uc.l.Warn(ctx, "briefing: continuing without tasks", "error", err.Error())
		if nErr := uc.notifier.Notify(ctx, fmt.Sprintf("Could not fetch TickTick tasks: %v", err)); nErr != nil {
			uc.l.Error(ctx, "briefing: notify failed", "error", nErr.Error())
		}
		return "", 0
	}
	if buckets.Total() == 0 {
		return "", 0
	}
	return uc.tasks.FormatBriefing(buckets), buckets.Total()
}
