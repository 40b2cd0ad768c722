package convert

import (
	"testing"

	"github.com/MKhiriev/go-soulkey/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		raw      string
		want     models.TypedValue
		degraded bool
	}{
		// string
		{name: "string textual", tag: "string", raw: `"jdbc:postgresql://db"`, want: models.Text("jdbc:postgresql://db")},
		{name: "string from number", tag: "string", raw: `42`, want: models.Text("42")},
		{name: "string from bool", tag: "string", raw: `true`, want: models.Text("true")},
		{name: "string from object", tag: "string", raw: `{"a":1}`, want: models.Text(`{"a":1}`)},
		{name: "string tag case-insensitive", tag: "STRING", raw: `"x"`, want: models.Text("x")},

		// integer
		{name: "integer number", tag: "integer", raw: `42`, want: models.Integer(42)},
		{name: "integer negative", tag: "integer", raw: `-7`, want: models.Integer(-7)},
		{name: "integer max int64", tag: "integer", raw: `9223372036854775807`, want: models.Integer(9223372036854775807)},
		{name: "integer from text", tag: "integer", raw: `"1000"`, want: models.Integer(1000)},
		{name: "integer truncates fraction", tag: "integer", raw: `42.9`, want: models.Integer(42)},
		{name: "integer truncates toward zero", tag: "integer", raw: `"-3.7"`, want: models.Integer(-3)},
		{name: "integer exponent", tag: "integer", raw: `1e3`, want: models.Integer(1000)},
		{name: "integer unparsable text", tag: "integer", raw: `"many"`, want: models.Text("many"), degraded: true},
		{name: "integer from bool", tag: "integer", raw: `true`, want: models.Text("true"), degraded: true},
		{name: "integer overflow", tag: "integer", raw: `"92233720368547758070"`, want: models.Text("92233720368547758070"), degraded: true},
		{name: "integer tag case-insensitive", tag: "Integer", raw: `5`, want: models.Integer(5)},

		// decimal
		{name: "decimal number", tag: "decimal", raw: `12.345`, want: models.Decimal(decimal.RequireFromString("12.345"))},
		{name: "decimal from text", tag: "decimal", raw: `"12.345"`, want: models.Decimal(decimal.RequireFromString("12.345"))},
		{name: "decimal high precision", tag: "decimal", raw: `"0.1000000000000000000000000001"`, want: models.Decimal(decimal.RequireFromString("0.1000000000000000000000000001"))},
		{name: "decimal integer number", tag: "decimal", raw: `3`, want: models.Decimal(decimal.NewFromInt(3))},
		{name: "decimal unparsable", tag: "decimal", raw: `"abc"`, want: models.Text("abc"), degraded: true},

		// boolean
		{name: "boolean true", tag: "boolean", raw: `true`, want: models.Boolean(true)},
		{name: "boolean false", tag: "boolean", raw: `false`, want: models.Boolean(false)},
		{name: "boolean text TRUE", tag: "boolean", raw: `"TRUE"`, want: models.Boolean(true)},
		{name: "boolean text nope", tag: "boolean", raw: `"nope"`, want: models.Boolean(false)},
		{name: "boolean number", tag: "boolean", raw: `1`, want: models.Boolean(false)},

		// unknown
		{name: "unknown tag textual", tag: "uuid", raw: `"abc"`, want: models.Text("abc")},
		{name: "unknown tag number", tag: "", raw: `12.5`, want: models.Text("12.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.tag, gjson.Parse(tt.raw))
			assert.Truef(t, tt.want.Equal(got), "want %v (%s), got %v (%s)", tt.want, tt.want.Kind(), got, got.Kind())
			assert.Equal(t, tt.degraded, Degraded(tt.tag, got))
		})
	}
}

func TestConvert_DecimalKeepsExactDigits(t *testing.T) {
	got := Convert(TagDecimal, gjson.Parse(`"12.345"`))

	d, ok := got.AsDecimal()
	assert.True(t, ok)
	assert.Equal(t, "12.345", d.String())
}

func TestConvertJSON(t *testing.T) {
	assert.True(t, models.Integer(42).Equal(ConvertJSON(TagInteger, []byte(`42`))))
	assert.True(t, models.Boolean(true).Equal(ConvertJSON(TagBoolean, []byte(`"true"`))))
	// not valid JSON: treated as a bare string
	assert.True(t, models.Text("jdbc:postgresql://...").Equal(ConvertJSON(TagString, []byte(`jdbc:postgresql://...`))))
}
