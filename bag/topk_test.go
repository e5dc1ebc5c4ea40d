package bag

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func chars(s string) *Bag[byte] {
	return CountBy([]byte(s), func(c byte) byte { return c })
}

func TestTopOccurrences(t *testing.T) {
	type args struct {
		b *Bag[byte]
		k int
	}
	tests := []struct {
		name string
		args args
		want []Occurrence[byte]
	}{
		{
			name: "empty",
			args: args{
				b: New[byte](),
				k: 3,
			},
			want: []Occurrence[byte]{},
		},
		{
			name: "zero k",
			args: args{
				b: chars("abc"),
				k: 0,
			},
			want: []Occurrence[byte]{},
		},
		{
			name: "one",
			args: args{
				b: chars("a"),
				k: 1,
			},
			want: []Occurrence[byte]{
				{
					Element: 'a',
					Count:   1,
				},
			},
		},
		{
			name: "two",
			args: args{
				b: chars("aardvark"),
				k: 2,
			},
			want: []Occurrence[byte]{
				{
					Element: 'a',
					Count:   3,
				},
				{
					Element: 'r',
					Count:   2,
				},
			},
		},
		{
			name: "k larger than distinct",
			args: args{
				b: chars("aardvark"),
				k: 10,
			},
			want: []Occurrence[byte]{
				{Element: 'a', Count: 3},
				{Element: 'r', Count: 2},
				{Element: 'd', Count: 1},
				{Element: 'v', Count: 1},
				{Element: 'k', Count: 1},
			},
		},
		{
			name: "ties by first insertion",
			args: args{
				b: chars("zyxxyz"),
				k: 3,
			},
			want: []Occurrence[byte]{
				{Element: 'z', Count: 2},
				{Element: 'y', Count: 2},
				{Element: 'x', Count: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.b.TopOccurrences(tt.args.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopOccurrences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopOccurrences_Pets(t *testing.T) {
	favorites := CountBy(pets, kindOf).TopOccurrences(3)

	assert.Len(t, favorites, 3)
	assert.ElementsMatch(t, []Occurrence[petType]{
		{Element: cat, Count: 2},
		{Element: dog, Count: 2},
		{Element: hamster, Count: 2},
	}, favorites)
}

func TestTopOccurrences_Properties(t *testing.T) {
	b := chars("the quick brown fox jumps over the lazy dog")
	snapshot := b.ToMap()

	for k := 0; k <= b.DistinctCount()+2; k++ {
		got := b.TopOccurrences(k)

		want := k
		if want > b.DistinctCount() {
			want = b.DistinctCount()
		}
		assert.Len(t, got, want)

		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
		}
		for _, o := range got {
			assert.Equal(t, b.OccurrencesOf(o.Element), o.Count)
		}

		// reproducible and side-effect free
		assert.Equal(t, got, b.TopOccurrences(k))
		assert.Equal(t, snapshot, b.ToMap())
	}
}

func TestTopOccurrences_Panic(t *testing.T) {
	assert.PanicsWithValue(t, "k is negative", func() {
		_ = chars("abc").TopOccurrences(-1)
	})
	assert.PanicsWithValue(t, "k is negative", func() {
		_ = chars("abc").ToImmutable().BottomOccurrences(-1)
	})
}

func TestBottomOccurrences(t *testing.T) {
	type args struct {
		b *Bag[byte]
		k int
	}
	tests := []struct {
		name string
		args args
		want []Occurrence[byte]
	}{
		{
			name: "empty",
			args: args{
				b: New[byte](),
				k: 1,
			},
			want: []Occurrence[byte]{},
		},
		{
			name: "one",
			args: args{
				b: chars("a"),
				k: 1,
			},
			want: []Occurrence[byte]{
				{
					Element: 'a',
					Count:   1,
				},
			},
		},
		{
			name: "two",
			args: args{
				b: chars("rraacecaarr"),
				k: 2,
			},
			want: []Occurrence[byte]{
				{
					Element: 'e',
					Count:   1,
				},
				{
					Element: 'c',
					Count:   2,
				},
			},
		},
		{
			name: "ties by first insertion",
			args: args{
				b: chars("aaqpq"),
				k: 3,
			},
			want: []Occurrence[byte]{
				{Element: 'p', Count: 1},
				{Element: 'a', Count: 2},
				{Element: 'q', Count: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.b.BottomOccurrences(tt.args.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BottomOccurrences() = %v, want %v", got, tt.want)
			}
		})
	}
}
