package garnish

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// tagName is the struct tag that declares a field's codec unit.
const tagName = "garnish"

func init() {
	sentinel.Tag(tagName)
}

var unitType = reflect.TypeFor[Unit]()

// Processor decodes and encodes records of type T through a host Codec.
//
// The host does all the traversal; a Processor adds the field plan. At
// construction it scans T for fields whose type is a codec unit and for
// `garnish:"<kind>"` declarations, and rejects declarations that name an
// unknown kind or disagree with the field type. When a decode or encode
// fails inside a unit, the returned CodecError names the record fields
// bound to that unit's kind.
//
// Processors are immutable after construction and safe for concurrent use.
type Processor[T any] struct {
	codec    Codec
	typeName string
	fields   []FieldPlan
	byKind   map[Kind][]string
	silent   bool
}

// FieldPlan describes one record field bound to a codec unit.
type FieldPlan struct {
	Name     string // Dotted path from the record root
	Kind     Kind   // Unit kind of the field type
	Declared bool   // Field carries a garnish tag
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorConfig)

type processorConfig struct {
	requireTags bool
	silent      bool
}

// WithRequireTags makes every unit-typed field carry a matching garnish tag.
func WithRequireTags() ProcessorOption {
	return func(c *processorConfig) { c.requireTags = true }
}

// WithSilent disables capitan signals for the processor.
func WithSilent() ProcessorOption {
	return func(c *processorConfig) { c.silent = true }
}

// NewProcessor creates a Processor for the struct type T.
func NewProcessor[T any](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	var cfg processorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	typeName, fields, err := buildFieldPlans[T](cfg)
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		typeName: typeName,
		fields:   fields,
		byKind:   make(map[Kind][]string),
		silent:   cfg.silent,
	}
	for _, f := range fields {
		p.byKind[f.Kind] = append(p.byKind[f.Kind], f.Name)
	}

	if !p.silent {
		emitProcessorCreated(context.Background(), codec.ContentType(), typeName, len(fields))
	}
	return p, nil
}

// Fields returns the field plan in declaration order.
func (p *Processor[T]) Fields() []FieldPlan {
	return append([]FieldPlan(nil), p.fields...)
}

// ContentType returns the content type of the host codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Decode unmarshals data into a new T.
func (p *Processor[T]) Decode(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	if !p.silent {
		emitDecodeStart(ctx, p.codec.ContentType(), p.typeName)
	}

	var retErr error
	defer func() {
		if !p.silent {
			emitDecodeComplete(ctx, p.codec.ContentType(), p.typeName,
				len(data), time.Since(start), retErr)
		}
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err, p.fieldsFor(err))
		return nil, retErr
	}
	return &obj, nil
}

// Encode marshals obj. A nil obj is handed to the codec as nil.
func (p *Processor[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	if !p.silent {
		emitEncodeStart(ctx, p.codec.ContentType(), p.typeName)
	}

	var retErr error
	var retData []byte
	defer func() {
		if !p.silent {
			emitEncodeComplete(ctx, p.codec.ContentType(), p.typeName,
				len(retData), time.Since(start), retErr)
		}
	}()

	var v any = obj
	if obj == nil {
		v = nil
	}
	data, err := p.codec.Marshal(v)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err, p.fieldsFor(err))
		return nil, retErr
	}
	retData = data
	return retData, nil
}

// fieldsFor returns the fields bound to the kind of a FieldError cause.
func (p *Processor[T]) fieldsFor(err error) []string {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return nil
	}
	return append([]string(nil), p.byKind[fe.Kind]...)
}

// buildFieldPlans creates the field plan for T by scanning struct tags.
func buildFieldPlans[T any](cfg processorConfig) (string, []FieldPlan, error) {
	spec := sentinel.Scan[T]()
	var plans []FieldPlan
	visiting := map[reflect.Type]bool{reflect.TypeFor[T](): true}
	if err := buildFieldPlansRecursive(&plans, spec, "", cfg, visiting); err != nil {
		return "", nil, err
	}
	return spec.TypeName, plans, nil
}

// buildFieldPlansRecursive processes fields and descends into nested structs
// that are not themselves units.
func buildFieldPlansRecursive(plans *[]FieldPlan, spec sentinel.Metadata, namePrefix string, cfg processorConfig, visiting map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		tag, declared := field.Tags[tagName]
		kind, isUnit := unitKind(field.ReflectType)

		if declared {
			if !IsValidKind(Kind(tag)) || !isUnit || kind != Kind(tag) {
				return newConfigError(ErrInvalidTag, tag, fullName)
			}
		}

		if isUnit {
			if cfg.requireTags && !declared {
				return newConfigError(ErrInvalidTag, string(kind), fullName)
			}
			*plans = append(*plans, FieldPlan{Name: fullName, Kind: kind, Declared: declared})
			continue
		}

		rt := field.ReflectType
		if rt.Kind() == reflect.Pointer {
			rt = rt.Elem()
		}
		if rt.Kind() != reflect.Struct || visiting[rt] {
			continue
		}
		nestedSpec := scanNestedType(rt)
		if nestedSpec == nil {
			continue
		}
		visiting[rt] = true
		err := buildFieldPlansRecursive(plans, *nestedSpec, fullName, cfg, visiting)
		delete(visiting, rt)
		if err != nil {
			return err
		}
	}
	return nil
}

// unitKind reports the unit kind of rt or *rt's element. Interface types
// carry no kind of their own and are never units.
func unitKind(rt reflect.Type) (Kind, bool) {
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() == reflect.Interface || !rt.Implements(unitType) {
		return "", false
	}
	return reflect.Zero(rt).Interface().(Unit).GarnishKind(), true
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseTags extracts the garnish tag from a struct tag.
func parseTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if val, ok := tag.Lookup(tagName); ok {
		tags[tagName] = val
	}
	return tags
}
