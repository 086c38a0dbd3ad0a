package collections_test

import (
	"slices"
	"testing"

	"linear_collections/src/collections"
	"linear_collections/src/harness"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque_ConcreteScenario(t *testing.T) {
	d := collections.NewDeque[int]()
	d.AddFront(1)
	d.AddTail(2)
	d.AddFront(0)
	assert.Equal(t, []int{0, 1, 2}, d.Items())

	v, ok := d.RemoveFront()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = d.RemoveTail()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, []int{1}, d.Items())
	assert.Equal(t, 1, d.Size())
}

func TestDeque_AddFront(t *testing.T) {
	rng := harness.NewRand(21)
	d := collections.NewDeque[int]()

	item1 := rng.Int(0, 100)
	d.AddFront(item1)
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, item1, d.Items()[0])

	item2 := rng.Int(0, 100)
	d.AddFront(item2)
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, []int{item2, item1}, d.Items())
}

func TestDeque_AddTail(t *testing.T) {
	rng := harness.NewRand(22)
	d := collections.NewDeque[int]()

	item1 := rng.Int(0, 100)
	d.AddTail(item1)
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, item1, d.Items()[0])

	item2 := rng.Int(0, 100)
	d.AddTail(item2)
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, []int{item1, item2}, d.Items())
}

func TestDeque_Remove(t *testing.T) {
	type when struct {
		name   string
		remove func(*collections.Deque[int]) (int, bool)
	}
	for _, w := range []when{
		{name: "front", remove: (*collections.Deque[int]).RemoveFront},
		{name: "tail", remove: (*collections.Deque[int]).RemoveTail},
	} {
		t.Run(w.name+" of one item", func(t *testing.T) {
			rng := harness.NewRand(23)
			d := collections.NewDeque[int]()
			item := rng.Int(0, 100)
			d.AddFront(item)

			v, ok := w.remove(d)
			require.True(t, ok)
			assert.Equal(t, item, v)
			assert.Equal(t, 0, d.Size())
			assert.Empty(t, d.Items())

			v, ok = w.remove(d)
			assert.False(t, ok)
			assert.Zero(t, v)
			assert.Equal(t, 0, d.Size())
		})

		t.Run(w.name+" of empty is repeatable", func(t *testing.T) {
			d := collections.NewDeque[int]()
			for range 5 {
				v, ok := w.remove(d)
				assert.False(t, ok)
				assert.Zero(t, v)
				assert.Equal(t, 0, d.Size())
			}
		})
	}
}

func TestDeque_DrainOrder(t *testing.T) {
	rng := harness.NewRand(24)
	items := rng.Ints(rng.Count(3, 100), 0, 100)

	fill := func() *collections.Deque[int] {
		d := collections.NewDeque[int]()
		for _, v := range items {
			d.AddTail(v)
		}
		return d
	}

	t.Run("from front keeps order", func(t *testing.T) {
		d := fill()
		got := []int{}
		for d.Size() > 0 {
			size := d.Size()
			v, ok := d.RemoveFront()
			require.True(t, ok)
			require.Equal(t, size-1, d.Size())
			got = append(got, v)
		}
		if diff := cmp.Diff(items, got); diff != "" {
			t.Errorf("drained (-want +got):\n%s", diff)
		}
	})

	t.Run("from tail reverses order", func(t *testing.T) {
		d := fill()
		got := []int{}
		for d.Size() > 0 {
			v, ok := d.RemoveTail()
			require.True(t, ok)
			got = append(got, v)
		}
		want := slices.Clone(items)
		slices.Reverse(want)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("drained (-want +got):\n%s", diff)
		}
	})
}

func TestDeque_ZeroValue(t *testing.T) {
	var d collections.Deque[string]
	_, ok := d.RemoveTail()
	assert.False(t, ok)
	d.AddTail("b")
	d.AddFront("a")
	assert.Equal(t, "Deque[a b]", d.String())
}

func TestDeque_AgreesWithModel(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		rng := harness.NewRand(seed)
		d := collections.NewDeque[int]()
		m := harness.NewDequeModel()
		for i := range 300 {
			switch rng.Int(0, 3) {
			case 0:
				v := rng.Int(0, 100)
				d.AddFront(v)
				m.AddFront(v)
			case 1:
				v := rng.Int(0, 100)
				d.AddTail(v)
				m.AddTail(v)
			case 2:
				gv, gok := d.RemoveFront()
				wv, wok := m.RemoveFront()
				require.Equal(t, wok, gok, "seed %d step %d", seed, i)
				require.Equal(t, wv, gv, "seed %d step %d", seed, i)
			case 3:
				gv, gok := d.RemoveTail()
				wv, wok := m.RemoveTail()
				require.Equal(t, wok, gok, "seed %d step %d", seed, i)
				require.Equal(t, wv, gv, "seed %d step %d", seed, i)
			}
			require.Equal(t, m.Items(), d.Items(), "seed %d step %d", seed, i)
		}
	}
}
