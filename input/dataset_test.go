package input

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestClassify(t *testing.T) {
	var tests = []struct {
		name string
		text string
		want Dataset
		err  error
	}{
		{
			name: "only data",
			text: "3\n5\n",
			want: Dataset{Primary: []uint32{3, 5}},
		},
		{
			name: "labeled data",
			text: "3 cats\n5 dogs\n",
			want: Dataset{Primary: []uint32{3, 5}, Labels: []string{"cats", "dogs"}},
		},
		{
			name: "comparison data",
			text: "3 4\n5 1\n",
			want: Dataset{Primary: []uint32{3, 5}, Compare: []uint32{4, 1}},
		},
		{
			name: "labeled comparison data",
			text: "3 4 cats\n5 1 dogs\n",
			want: Dataset{
				Primary: []uint32{3, 5},
				Compare: []uint32{4, 1},
				Labels:  []string{"cats", "dogs"},
			},
		},
		{
			name: "numeric labels",
			text: "3 4 7\n5 1 8\n",
			want: Dataset{
				Primary: []uint32{3, 5},
				Compare: []uint32{4, 1},
				Labels:  []string{"7", "8"},
			},
		},
		{
			name: "partly numeric second column",
			text: "3 4\n5 x\n",
			want: Dataset{Primary: []uint32{3, 5}, Labels: []string{"4", "x"}},
		},
		{
			name: "text first",
			text: "cats 3\n",
			err:  ErrPrimaryNotIntegers,
		},
		{
			name: "labels then text",
			text: "3 cats more\n",
			err:  ErrLabelsThenText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cols, err = Read(strings.NewReader(tt.text), DefaultLimit)
			if err != nil {
				t.Fatalf("Read() err = %v", err)
			}

			var got Dataset
			got, err = Classify(cols)

			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Classify() err = %v, want %v", err, tt.err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Classify() err = %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDatasetMax(t *testing.T) {
	var ds = Dataset{Primary: []uint32{3, 9, 2}, Compare: []uint32{1, 12, 0}}
	if ds.Max() != 12 {
		t.Errorf("Max() = %d, want 12", ds.Max())
	}

	ds = Dataset{Primary: []uint32{0, 0}}
	if ds.Max() != 0 {
		t.Errorf("Max() = %d, want 0", ds.Max())
	}
}
