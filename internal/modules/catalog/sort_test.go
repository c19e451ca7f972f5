package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/kiranakart/kirana-backend/internal/sorting"
)

func priced(prices ...string) []Product {
	products := make([]Product, 0, len(prices))
	for _, p := range prices {
		products = append(products, Product{ID: uuid.New(), Price: json.Number(p)})
	}
	return products
}

func pricesOf(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Price.String())
	}
	return out
}

func namesOf(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestSortProducts_ByPrice(t *testing.T) {
	got, err := SortProducts(priced("215", "75", "140"), SortByPrice, language.Und)
	require.NoError(t, err)
	assert.Equal(t, []string{"75", "140", "215"}, pricesOf(got))
}

func TestSortProducts_PriceIsNumericNotLexicographic(t *testing.T) {
	// "9" > "10" as strings; numerically 9 < 10.
	got, err := SortProducts(priced("10", "9", "100"), SortByPrice, language.Und)
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "10", "100"}, pricesOf(got))
}

func TestSortProducts_ByName(t *testing.T) {
	products := []Product{
		{Name: "Tata Salt"},
		{Name: "Amami oil"},
		{Name: "Aashirvaad Iodized Salt"},
	}
	got, err := SortProducts(products, SortByName, language.Und)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Aashirvaad Iodized Salt", "Amami oil", "Tata Salt"},
		namesOf(got))
}

func TestSortProducts_NameCollationIsLocaleAware(t *testing.T) {
	// Raw code-point order would put "amul butter" after "Tata Salt".
	products := []Product{
		{Name: "Tata Salt"},
		{Name: "amul butter"},
	}
	got, err := SortProducts(products, SortByName, language.Und)
	require.NoError(t, err)
	assert.Equal(t, []string{"amul butter", "Tata Salt"}, namesOf(got))
}

func TestSortProducts_EqualPricesKeepInputOrder(t *testing.T) {
	first := Product{ID: uuid.New(), Price: "100"}
	second := Product{ID: uuid.New(), Price: "100"}

	got, err := SortProducts([]Product{first, second}, SortByPrice, language.Und)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestSortProducts_Empty(t *testing.T) {
	got, err := SortProducts(nil, SortByPrice, language.Und)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSortProducts_MalformedPrice(t *testing.T) {
	_, err := SortProducts(priced("abc", "10"), SortByPrice, language.Und)
	assert.ErrorIs(t, err, sorting.ErrInvalidKey)

	// Even a single record is checked.
	_, err = SortProducts(priced("abc"), SortByPrice, language.Und)
	assert.ErrorIs(t, err, sorting.ErrInvalidKey)
}

func TestSortProducts_UnknownKey(t *testing.T) {
	_, err := SortProducts(priced("10"), SortKey("sku"), language.Und)
	assert.ErrorIs(t, err, sorting.ErrInvalidKey)
}

func TestSortProducts_InputUntouched(t *testing.T) {
	in := priced("3", "1", "2")
	want := pricesOf(in)

	_, err := SortProducts(in, SortByPrice, language.Und)
	require.NoError(t, err)
	assert.Equal(t, want, pricesOf(in))
}
