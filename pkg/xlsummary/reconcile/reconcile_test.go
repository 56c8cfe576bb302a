package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
)

func rec(name string, v models.Value) models.SheetRecord {
	return models.SheetRecord{Name: name, UnitCost: v}
}

func num(n float64) models.Value {
	return models.Number(n)
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		previous models.Snapshot
		current  models.Snapshot
		want     models.ChangeSet
	}{
		{
			name:     "rooms example",
			previous: models.Snapshot{rec("Room A", num(100)), rec("Room B", num(200))},
			current:  models.Snapshot{rec("Room A", num(150)), rec("Room C", num(300))},
			want: models.ChangeSet{
				Updated: []models.Update{{Name: "Room A", Old: num(100), New: num(150)}},
				Added:   []models.SheetRecord{rec("Room C", num(300))},
				Removed: []models.SheetRecord{rec("Room B", num(200))},
			},
		},
		{
			name:     "empty previous adds everything",
			previous: nil,
			current:  models.Snapshot{rec("A", num(1)), rec("B", models.Unknown()), rec("C", models.Text("x"))},
			want: models.ChangeSet{
				Added: []models.SheetRecord{rec("A", num(1)), rec("B", models.Unknown()), rec("C", models.Text("x"))},
			},
		},
		{
			name:     "empty current removes everything",
			previous: models.Snapshot{rec("A", num(1)), rec("B", num(2))},
			current:  nil,
			want: models.ChangeSet{
				Removed: []models.SheetRecord{rec("A", num(1)), rec("B", num(2))},
			},
		},
		{
			name:     "unknown to known is an update",
			previous: models.Snapshot{rec("A", models.Unknown())},
			current:  models.Snapshot{rec("A", num(5))},
			want: models.ChangeSet{
				Updated: []models.Update{{Name: "A", Old: models.Unknown(), New: num(5)}},
			},
		},
		{
			name:     "known to unknown is an update",
			previous: models.Snapshot{rec("A", num(5))},
			current:  models.Snapshot{rec("A", models.Unknown())},
			want: models.ChangeSet{
				Updated: []models.Update{{Name: "A", Old: num(5), New: models.Unknown()}},
			},
		},
		{
			name:     "type mismatch is an update",
			previous: models.Snapshot{rec("A", models.Text("42"))},
			current:  models.Snapshot{rec("A", num(42))},
			want: models.ChangeSet{
				Updated: []models.Update{{Name: "A", Old: models.Text("42"), New: num(42)}},
			},
		},
		{
			name:     "numeric representations are equal",
			previous: models.Snapshot{rec("A", models.ParseValue("100"))},
			current:  models.Snapshot{rec("A", models.ParseValue("100.0"))},
			want:     models.ChangeSet{},
		},
		{
			name:     "duplicate previous names keep last value",
			previous: models.Snapshot{rec("A", num(1)), rec("B", num(9)), rec("A", num(2))},
			current:  models.Snapshot{rec("A", num(2))},
			want: models.ChangeSet{
				Removed: []models.SheetRecord{rec("B", num(9))},
			},
		},
		{
			name:     "blank previous names are ignored",
			previous: models.Snapshot{rec("", num(1)), rec("A", num(1))},
			current:  models.Snapshot{rec("A", num(1))},
			want:     models.ChangeSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes, result := Reconcile(tt.previous, tt.current)
			if diff := cmp.Diff(tt.want, changes, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("changes mismatch (-want +got):\n%s", diff)
			}
			require.True(t, result.Equal(tt.current), "result %v, expected %v", result, tt.current)
		})
	}
}

func TestReconcileAgainstItself(t *testing.T) {
	s := models.Snapshot{rec("A", num(1)), rec("B", models.Unknown()), rec("C", models.Text("t"))}

	changes, result := Reconcile(s, s)
	require.True(t, changes.Empty())
	require.True(t, result.Equal(s))
}

func TestReconcileIdempotent(t *testing.T) {
	previous := models.Snapshot{rec("Room A", num(100)), rec("Room B", num(200))}
	current := models.Snapshot{rec("Room A", num(150)), rec("Room C", num(300))}

	first, persisted := Reconcile(previous, current)
	require.False(t, first.Empty())

	second, again := Reconcile(persisted, current)
	require.True(t, second.Empty())
	require.True(t, again.Equal(persisted))
}

func TestReconcileResultIsCopy(t *testing.T) {
	current := models.Snapshot{rec("A", num(1))}

	_, result := Reconcile(nil, current)
	result[0].Name = "changed"
	require.Equal(t, "A", current[0].Name)
}

func TestNormalize(t *testing.T) {
	require.Empty(t, Normalize(nil))

	got := Normalize(models.Snapshot{rec("", num(1)), rec("A", num(2)), rec("", models.Unknown())})
	require.Equal(t, []string{"A"}, got.Names())
}
