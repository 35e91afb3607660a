package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/garnish"
	"github.com/zoobzio/garnish/bson"
	"github.com/zoobzio/garnish/json"
	"github.com/zoobzio/garnish/msgpack"
	garnishtest "github.com/zoobzio/garnish/testing"
	"github.com/zoobzio/garnish/yaml"
)

func benchmarkEncode(b *testing.B, c garnish.Codec) {
	proc, err := garnish.NewProcessor[garnishtest.Profile](c, garnish.WithSilent())
	if err != nil {
		b.Fatal(err)
	}
	profile := garnishtest.SampleProfile()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Encode(context.Background(), &profile)
	}
}

func benchmarkDecode(b *testing.B, c garnish.Codec) {
	proc, err := garnish.NewProcessor[garnishtest.Profile](c, garnish.WithSilent())
	if err != nil {
		b.Fatal(err)
	}
	profile := garnishtest.SampleProfile()
	data, err := proc.Encode(context.Background(), &profile)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Decode(context.Background(), data)
	}
}

func BenchmarkProcessor_Encode_JSON(b *testing.B)    { benchmarkEncode(b, json.New()) }
func BenchmarkProcessor_Encode_YAML(b *testing.B)    { benchmarkEncode(b, yaml.New()) }
func BenchmarkProcessor_Encode_Msgpack(b *testing.B) { benchmarkEncode(b, msgpack.New()) }
func BenchmarkProcessor_Encode_BSON(b *testing.B)    { benchmarkEncode(b, bson.New()) }

func BenchmarkProcessor_Decode_JSON(b *testing.B)    { benchmarkDecode(b, json.New()) }
func BenchmarkProcessor_Decode_YAML(b *testing.B)    { benchmarkDecode(b, yaml.New()) }
func BenchmarkProcessor_Decode_Msgpack(b *testing.B) { benchmarkDecode(b, msgpack.New()) }
func BenchmarkProcessor_Decode_BSON(b *testing.B)    { benchmarkDecode(b, bson.New()) }

func BenchmarkProcessor_Build(b *testing.B) {
	codec := json.New()
	for i := 0; i < b.N; i++ {
		_, _ = garnish.NewProcessor[garnishtest.Profile](codec, garnish.WithSilent())
	}
}

func BenchmarkHex_Encode(b *testing.B) {
	h := garnish.Hex(make([]byte, 256))
	for i := 0; i < b.N; i++ {
		_, _ = h.MarshalText()
	}
}

func BenchmarkStringKeyMap_Decode(b *testing.B) {
	data := []byte(`{"1":"a","2":"b","3":"c","4":"d","5":"e","6":"f","7":"g","8":"h"}`)
	for i := 0; i < b.N; i++ {
		var m garnish.StringKeyMap[int, string]
		_ = m.UnmarshalJSON(data)
	}
}

func BenchmarkSplitComma(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = garnish.SplitComma[int]("1,2,3,4,5,6,7,8,9,10")
	}
}
