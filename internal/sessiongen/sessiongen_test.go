package sessiongen

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

// ── helpers ──

var rome = mustLoad("Europe/Rome")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// 2024-01-01 is a Monday.
func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, rome)
}

func tueThuSlots() []Slot {
	return []Slot{
		{Location: "Brescia", Weekday: Tuesday, StartTime: "18:00", EndTime: "19:30"},
		{Location: "Gussago", Weekday: Thursday, StartTime: "18:30", EndTime: "20:00"},
	}
}

// ── Weekday Index Mapper ──

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want Weekday
	}{
		{day(1), Monday},
		{day(2), Tuesday},
		{day(3), Wednesday},
		{day(4), Thursday},
		{day(5), Friday},
		{day(6), Saturday},
		{day(7), Sunday},
		{day(8), Monday},
	}
	for _, tt := range tests {
		if got := WeekdayOf(tt.date); got != tt.want {
			t.Errorf("WeekdayOf(%s) = %v, want %v", tt.date.Format(DateLayout), got, tt.want)
		}
	}
}

func TestIndexOfName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Lunedì", 0},
		{"Martedì", 1},
		{"Mercoledì", 2},
		{"Giovedì", 3},
		{"Venerdì", 4},
		{"Sabato", 5},
		{"Domenica", 6},
		{"  giovedi ", 3},
		{"MARTEDÌ", 1},
		{"Monday", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := IndexOfName(tt.name); got != tt.want {
			t.Errorf("IndexOfName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParseWeekday_RoundTripsNames(t *testing.T) {
	for i, name := range Names() {
		w, err := ParseWeekday(name)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", name, err)
		}
		if int(w) != i {
			t.Errorf("ParseWeekday(%q) = %d, want %d", name, w, i)
		}
		if w.String() != name {
			t.Errorf("String() = %q, want %q", w.String(), name)
		}
	}

	if _, err := ParseWeekday("Funday"); !errors.Is(err, ErrUnknownWeekday) {
		t.Errorf("expected ErrUnknownWeekday, got %v", err)
	}
}

// ── Next-Available-Day Search ──

func TestNextAvailableDay_EmptySlots(t *testing.T) {
	_, _, err := NextAvailableDay(nil, day(1))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestNextAvailableDay_IncludesStartDay(t *testing.T) {
	slots := []Slot{{Location: "Brescia", Weekday: Tuesday}}

	got, _, err := NextAvailableDay(slots, day(2).Add(20*time.Hour))
	if err != nil {
		t.Fatalf("NextAvailableDay: %v", err)
	}
	if !got.Equal(day(2)) {
		t.Errorf("expected %s, got %s", day(2).Format(DateLayout), got.Format(DateLayout))
	}
}

func TestNextAvailableDay_WrapsIntoNextWeek(t *testing.T) {
	// Wednesday with only a Tuesday slot -> the following Tuesday, 6 days later.
	slots := []Slot{{Location: "Brescia", Weekday: Tuesday}}

	got, slot, err := NextAvailableDay(slots, day(3))
	if err != nil {
		t.Fatalf("NextAvailableDay: %v", err)
	}
	if !got.Equal(day(9)) {
		t.Errorf("expected 2024-01-09, got %s", got.Format(DateLayout))
	}
	if slot.Location != "Brescia" {
		t.Errorf("expected Brescia, got %s", slot.Location)
	}
}

func TestNextAvailableDay_SameWeekdayTakesFirstSlot(t *testing.T) {
	slots := []Slot{
		{Location: "Ospitaletto", Weekday: Friday},
		{Location: "Gussago", Weekday: Thursday},
		{Location: "Brescia", Weekday: Thursday},
	}

	got, slot, err := NextAvailableDay(slots, day(1))
	if err != nil {
		t.Fatalf("NextAvailableDay: %v", err)
	}
	if !got.Equal(day(4)) {
		t.Errorf("expected Thursday 2024-01-04, got %s", got.Format(DateLayout))
	}
	if slot.Location != "Gussago" {
		t.Errorf("expected first Thursday slot Gussago, got %s", slot.Location)
	}
}

func TestNextAvailableDay_Property(t *testing.T) {
	slotSets := [][]Slot{
		{{Weekday: Monday}},
		{{Weekday: Sunday}},
		{{Weekday: Wednesday}, {Weekday: Saturday}},
		tueThuSlots(),
	}
	for _, slots := range slotSets {
		for d := 1; d <= 14; d++ {
			start := day(d).Add(9 * time.Hour)
			got, slot, err := NextAvailableDay(slots, start)
			if err != nil {
				t.Fatalf("NextAvailableDay: %v", err)
			}
			if got.Before(day(d)) {
				t.Errorf("date %s before start %s", got.Format(DateLayout), start.Format(DateLayout))
			}
			if got.Sub(day(d)) >= 7*24*time.Hour {
				t.Errorf("date %s not within a week of %s", got.Format(DateLayout), start.Format(DateLayout))
			}
			if WeekdayOf(got) != slot.Weekday {
				t.Errorf("weekday mismatch: %v vs slot %v", WeekdayOf(got), slot.Weekday)
			}
		}
	}
}

// ── Multi-Week Expander ──

func TestExpand_LengthIsSlotsTimesWeeks(t *testing.T) {
	slots := []Slot{{Weekday: Monday}, {Weekday: Wednesday}, {Weekday: Saturday}}
	for _, weeks := range []int{1, 2, 4} {
		got := Expand("cat-1", slots, weeks, day(3))
		if len(got) != len(slots)*weeks {
			t.Errorf("weeks=%d: expected %d drafts, got %d", weeks, len(slots)*weeks, len(got))
		}
	}
}

func TestExpand_TodayIsExcluded(t *testing.T) {
	// Reference is a Tuesday; the Tuesday slot starts a week later.
	slots := []Slot{{Location: "Brescia", Weekday: Tuesday}}

	got := Expand("cat-1", slots, 2, day(2).Add(7*time.Hour))
	if len(got) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(got))
	}
	if !got[0].SessionDate.Equal(day(9)) {
		t.Errorf("expected first date 2024-01-09, got %s", got[0].Date())
	}
	if !got[1].SessionDate.Equal(day(16)) {
		t.Errorf("expected second date 2024-01-16, got %s", got[1].Date())
	}
}

func TestExpand_OrderBySlotThenWeek(t *testing.T) {
	got := Expand("cat-1", tueThuSlots(), 2, day(1))

	want := []string{"2024-01-02", "2024-01-09", "2024-01-04", "2024-01-11"}
	if len(got) != len(want) {
		t.Fatalf("expected %d drafts, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Date() != w {
			t.Errorf("draft %d: expected %s, got %s", i, w, got[i].Date())
		}
		if got[i].CategoryID != "cat-1" {
			t.Errorf("draft %d: expected category cat-1, got %s", i, got[i].CategoryID)
		}
	}
}

func TestExpand_NoDuplicatePairs(t *testing.T) {
	slots := []Slot{
		{Location: "Brescia", Weekday: Tuesday},
		{Location: "Gussago", Weekday: Tuesday},
		{Location: "Brescia", Weekday: Friday},
	}
	seen := make(map[string]bool)
	for _, d := range Expand("cat-1", slots, 4, day(5)) {
		key := d.Date() + "|" + d.Location
		if seen[key] {
			t.Errorf("duplicate draft %s", key)
		}
		seen[key] = true
	}
}

// ── Location Normalizer ──

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"Brescia", "Brescia"},
		{"  brescia ", "Brescia"},
		{"Campo di Gussago", "Gussago"},
		{"OSPITALETTO", "Ospitaletto"},
		{"Rovato", "Rovato"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLocation(tt.raw); got != tt.want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// ── Generate ──

func TestGenerate_WeeklyScenario(t *testing.T) {
	got, err := Generate(Request{CategoryID: "u14", Mode: ModeWeekly, ReferenceDate: day(1)}, tueThuSlots())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(got))
	}
	if got[0].Date() != "2024-01-02" || got[0].Location != "Brescia" {
		t.Errorf("unexpected first draft %s %s", got[0].Date(), got[0].Location)
	}
	if got[1].Date() != "2024-01-04" || got[1].Location != "Gussago" {
		t.Errorf("unexpected second draft %s %s", got[1].Date(), got[1].Location)
	}
	for _, d := range got {
		if d.AwayPlace != nil {
			t.Errorf("home draft %s should have no away place", d.Date())
		}
	}
}

func TestGenerate_MonthlyScenario(t *testing.T) {
	got, err := Generate(Request{CategoryID: "u14", Mode: ModeMonthly, ReferenceDate: day(1)}, tueThuSlots())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 drafts, got %d", len(got))
	}

	perWeek := make(map[int]int)
	for _, d := range got {
		week := int(d.SessionDate.Sub(day(1)).Hours()/24) / 7
		perWeek[week]++
	}
	for w := 0; w < 4; w++ {
		if perWeek[w] != 2 {
			t.Errorf("week %d: expected 2 drafts, got %d", w, perWeek[w])
		}
	}

	// Tuesday series occupies the first four drafts.
	for i := 1; i < 4; i++ {
		if !got[i].SessionDate.Equal(got[i-1].SessionDate.AddDate(0, 0, 7)) {
			t.Errorf("Tuesday draft %d not 7 days after previous", i)
		}
		if WeekdayOf(got[i].SessionDate) != Tuesday {
			t.Errorf("draft %d expected Tuesday", i)
		}
	}
	for i := 5; i < 8; i++ {
		if !got[i].SessionDate.Equal(got[i-1].SessionDate.AddDate(0, 0, 7)) {
			t.Errorf("Thursday draft %d not 7 days after previous", i)
		}
	}
}

func TestGenerate_SingleFromWednesday(t *testing.T) {
	slots := []Slot{{Location: "brescia", Weekday: Tuesday}}

	got, err := Generate(Request{CategoryID: "u14", Mode: ModeSingle, ReferenceDate: day(3)}, slots)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(got))
	}
	if got[0].Date() != "2024-01-09" {
		t.Errorf("expected 2024-01-09, got %s", got[0].Date())
	}
	if got[0].Location != "Brescia" {
		t.Errorf("expected normalised Brescia, got %s", got[0].Location)
	}
	if got[0].AwayPlace != nil {
		t.Error("single mode must not set an away place")
	}
}

func TestGenerate_AwayLocationCarriesAwayPlace(t *testing.T) {
	slots := []Slot{{Location: "Rovato", Weekday: Saturday}}

	got, err := Generate(Request{CategoryID: "u14", Mode: ModeBiweekly, ReferenceDate: day(1)}, slots)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(got))
	}
	for _, d := range got {
		if d.AwayPlace == nil || *d.AwayPlace != "Rovato" {
			t.Errorf("expected away place Rovato on %s", d.Date())
		}
	}
}

func TestGenerate_EmptyConfigRejected(t *testing.T) {
	for _, mode := range []Mode{ModeSingle, ModeWeekly, ModeBiweekly, ModeMonthly} {
		got, err := Generate(Request{CategoryID: "u14", Mode: mode, ReferenceDate: day(1)}, nil)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("mode %s: expected ErrInvalidConfiguration, got %v", mode, err)
		}
		if len(got) != 0 {
			t.Errorf("mode %s: expected no drafts, got %d", mode, len(got))
		}
	}
}

func TestGenerate_UnknownMode(t *testing.T) {
	_, err := Generate(Request{Mode: "yearly", ReferenceDate: day(1)}, tueThuSlots())
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestGenerate_IsIdempotentAndDoesNotMutate(t *testing.T) {
	slots := []Slot{
		{Location: "campo gussago", Weekday: Thursday},
		{Location: "Rovato", Weekday: Sunday},
	}
	before := append([]Slot(nil), slots...)
	req := Request{CategoryID: "u16", Mode: ModeMonthly, ReferenceDate: day(10)}

	first, err := Generate(req, slots)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(req, slots)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different drafts")
	}
	if !reflect.DeepEqual(before, slots) {
		t.Error("Generate mutated its input slots")
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"single", "weekly", "biweekly", "monthly"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q): %v", s, err)
		}
	}
	if _, err := ParseMode("daily"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if ModeSingle.Weeks() != 0 || ModeWeekly.Weeks() != 1 || ModeBiweekly.Weeks() != 2 || ModeMonthly.Weeks() != 4 {
		t.Error("unexpected Weeks() mapping")
	}
}

// ── Dispatcher ──

type fakeStore struct {
	slots    []Slot
	listErr  error
	insertFn func([]Draft) (int, error)
	calls    int
	received []Draft
}

func (f *fakeStore) ListTrainingSlots(_ context.Context, _ string) ([]Slot, error) {
	return f.slots, f.listErr
}

func (f *fakeStore) BulkInsertSessions(_ context.Context, drafts []Draft) (int, error) {
	f.calls++
	f.received = drafts
	if f.insertFn != nil {
		return f.insertFn(drafts)
	}
	return len(drafts), nil
}

func TestDispatcher_SingleBulkInsert(t *testing.T) {
	store := &fakeStore{slots: tueThuSlots()}
	d := NewDispatcher(store)

	res, err := d.Dispatch(context.Background(), Request{CategoryID: "u14", Mode: ModeBiweekly, ReferenceDate: day(1)})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if store.calls != 1 {
		t.Errorf("expected exactly one bulk insert, got %d", store.calls)
	}
	if len(store.received) != 4 || res.Inserted != 4 {
		t.Errorf("expected 4 drafts inserted, got %d/%d", len(store.received), res.Inserted)
	}
}

func TestDispatcher_EmptyConfigNeverInserts(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(store)

	_, err := d.Dispatch(context.Background(), Request{CategoryID: "u14", Mode: ModeWeekly, ReferenceDate: day(1)})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
	if store.calls != 0 {
		t.Errorf("expected no insert, got %d", store.calls)
	}
}

func TestDispatcher_InsertErrorIsReturned(t *testing.T) {
	boom := errors.New("backend down")
	store := &fakeStore{
		slots:    tueThuSlots(),
		insertFn: func([]Draft) (int, error) { return 0, boom },
	}
	d := NewDispatcher(store)

	_, err := d.Dispatch(context.Background(), Request{CategoryID: "u14", Mode: ModeWeekly, ReferenceDate: day(1)})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
	if store.calls != 1 {
		t.Errorf("expected a single attempt, got %d", store.calls)
	}
}

func TestDispatcher_ZeroReferenceUsesClock(t *testing.T) {
	store := &fakeStore{slots: []Slot{{Location: "Brescia", Weekday: Tuesday}}}
	clock := func() time.Time { return time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC) }
	d := NewDispatcher(store, WithClock(clock), WithLocation(rome))

	res, err := d.Dispatch(context.Background(), Request{CategoryID: "u14", Mode: ModeSingle})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.Drafts[0].Date() != "2024-01-09" {
		t.Errorf("expected 2024-01-09, got %s", res.Drafts[0].Date())
	}
}

func TestDispatcher_UnknownModeShortCircuits(t *testing.T) {
	store := &fakeStore{slots: tueThuSlots()}
	d := NewDispatcher(store)

	_, err := d.Dispatch(context.Background(), Request{CategoryID: "u14", Mode: "daily", ReferenceDate: day(1)})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if store.calls != 0 {
		t.Errorf("expected no insert, got %d", store.calls)
	}
}
