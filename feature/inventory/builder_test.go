package inventory_test

import (
	"testing"
	"time"

	"inventory-manager/feature/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSources() inventory.Sources {
	return inventory.Sources{
		Items: [][]string{
			{"1167234", "Apple", "phone", ""},
			{"2390112", "Dell", "laptop", ""},
			{"9034210", "Dell", "tower", "damaged"},
			{"7346234", "Lenovo", "laptop", "Damaged"},
			{"3001265", "Samsung", "phone"},
		},
		Prices: [][]string{
			{"1167234", "534"},
			{"2390112", "799.99"},
			{"9034210", "345"},
			{"7346234", "239"},
			{"3001265", "1200"},
		},
		ServiceDates: [][]string{
			{"1167234", "7/1/2030"},
			{"2390112", "07/02/2030"},
			{"9034210", "5/27/2020"},
			{"7346234", "9/1/2020"},
			{"3001265", "12/1/2029"},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Run("Fully Overlapping Sources", func(t *testing.T) {
		inv, err := inventory.Build(sampleSources(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, inv.Len())

		for _, item := range inv.Items() {
			assert.True(t, item.HasPrice, item.ID)
			assert.True(t, item.HasServiceDate, item.ID)
		}

		item, ok := inv.Get("2390112")
		require.True(t, ok)
		assert.Equal(t, "Dell", item.Manufacturer)
		assert.Equal(t, "laptop", item.Type)
		assert.Equal(t, 799.99, item.Price)
		assert.True(t, time.Date(2030, 7, 2, 0, 0, 0, 0, time.Local).Equal(item.ServiceDate))
		assert.False(t, item.Damaged)
	})

	t.Run("Damaged Flag Is Case Insensitive", func(t *testing.T) {
		inv, err := inventory.Build(sampleSources(), nil, nil)
		require.NoError(t, err)

		tower, _ := inv.Get("9034210")
		lenovo, _ := inv.Get("7346234")
		phone, _ := inv.Get("3001265")
		assert.True(t, tower.Damaged)
		assert.True(t, lenovo.Damaged)
		assert.False(t, phone.Damaged)
		assert.Equal(t, "damaged", lenovo.ConditionLabel())
		assert.Equal(t, "", phone.ConditionLabel())
	})

	t.Run("Insertion Order Preserved", func(t *testing.T) {
		inv, err := inventory.Build(sampleSources(), nil, nil)
		require.NoError(t, err)

		var ids []string
		for _, item := range inv.Items() {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []string{"1167234", "2390112", "9034210", "7346234", "3001265"}, ids)
	})

	t.Run("Repeated Id Last Write Wins", func(t *testing.T) {
		src := sampleSources()
		src.Items = append(src.Items, []string{"1167234", "Google", "tablet", "damaged"})
		src.Prices = append(src.Prices, []string{"1167234", "10"})

		inv, err := inventory.Build(src, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, inv.Len())

		item, _ := inv.Get("1167234")
		assert.Equal(t, "Google", item.Manufacturer)
		assert.True(t, item.Damaged)
		assert.Equal(t, 10.0, item.Price)
		assert.Equal(t, "1167234", inv.Items()[0].ID)
	})

	t.Run("Missing Price Stays Unresolved", func(t *testing.T) {
		src := sampleSources()
		src.Prices = src.Prices[1:]

		inv, err := inventory.Build(src, nil, nil)
		require.NoError(t, err)

		item, _ := inv.Get("1167234")
		_, err = item.PriceValue()
		assert.ErrorIs(t, err, inventory.ErrUnresolvedField)
		_, err = item.ServiceDateValue()
		assert.NoError(t, err)
	})

	t.Run("Missing Service Date Stays Unresolved", func(t *testing.T) {
		src := sampleSources()
		src.ServiceDates = src.ServiceDates[:4]

		inv, err := inventory.Build(src, nil, nil)
		require.NoError(t, err)

		item, _ := inv.Get("3001265")
		_, err = item.InService(time.Now())
		assert.ErrorIs(t, err, inventory.ErrUnresolvedField)
	})
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*inventory.Sources)
		want   error
	}{
		{
			name:   "Primary Row Too Short",
			mutate: func(s *inventory.Sources) { s.Items[1] = []string{"2390112", "Dell"} },
			want:   inventory.ErrMalformedRow,
		},
		{
			name:   "Primary Row Too Long",
			mutate: func(s *inventory.Sources) { s.Items[1] = []string{"2390112", "Dell", "laptop", "", "extra"} },
			want:   inventory.ErrMalformedRow,
		},
		{
			name:   "Unparseable Price",
			mutate: func(s *inventory.Sources) { s.Prices[0] = []string{"1167234", "cheap"} },
			want:   inventory.ErrMalformedRow,
		},
		{
			name:   "Negative Price",
			mutate: func(s *inventory.Sources) { s.Prices[0] = []string{"1167234", "-1"} },
			want:   inventory.ErrMalformedRow,
		},
		{
			name:   "Price Row Wrong Width",
			mutate: func(s *inventory.Sources) { s.Prices[0] = []string{"1167234"} },
			want:   inventory.ErrMalformedRow,
		},
		{
			name:   "Unknown Price Id",
			mutate: func(s *inventory.Sources) { s.Prices = append(s.Prices, []string{"0000000", "1"}) },
			want:   inventory.ErrUnknownItem,
		},
		{
			name:   "Unparseable Date",
			mutate: func(s *inventory.Sources) { s.ServiceDates[2] = []string{"9034210", "2020-05-27"} },
			want:   inventory.ErrMalformedRow,
		},
		{
			name:   "Unknown Date Id",
			mutate: func(s *inventory.Sources) { s.ServiceDates = append(s.ServiceDates, []string{"0000000", "1/1/2030"}) },
			want:   inventory.ErrUnknownItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := sampleSources()
			tt.mutate(&src)

			inv, err := inventory.Build(src, nil, nil)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, inv)
		})
	}
}

func TestBuilder_FailedPassKeepsState(t *testing.T) {
	src := sampleSources()
	b := inventory.NewBuilder(nil, nil)
	require.NoError(t, b.AddItems(src.Items))

	bad := [][]string{{"1167234", "1"}, {"missing", "2"}}
	assert.ErrorIs(t, b.AddPrices(bad), inventory.ErrUnknownItem)

	item, _ := b.Inventory().Get("1167234")
	assert.False(t, item.HasPrice)
}

func TestInventory_ReadOnly(t *testing.T) {
	inv, err := inventory.Build(sampleSources(), nil, nil)
	require.NoError(t, err)

	items := inv.Items()
	items[0].Manufacturer = "Changed"

	item, _ := inv.Get(items[0].ID)
	assert.Equal(t, "Apple", item.Manufacturer)
}
