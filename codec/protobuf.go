package codec

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/contactconv/contact"
)

// Protobuf archives a contact list as a google.protobuf.ListValue whose
// elements are Struct messages of string values.
// Struct fields are a map, so Decode yields keys in sorted order.
// The zero value is ready to use.
type Protobuf struct{}

var _ ContactCodec = Protobuf{}

func (Protobuf) Encode(l contact.List) ([]byte, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(l))}
	for _, c := range l {
		fields := make(map[string]*structpb.Value, c.Len())
		c.Each(func(k, v string) {
			fields[k] = structpb.NewStringValue(v)
		})
		lv.Values = append(lv.Values, structpb.NewStructValue(&structpb.Struct{Fields: fields}))
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(lv)
}

func (Protobuf) Decode(b []byte) (contact.List, error) {
	var lv structpb.ListValue
	if err := proto.Unmarshal(b, &lv); err != nil {
		return nil, malformed("protobuf", err)
	}
	out := make(contact.List, 0, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, malformed("protobuf", fmt.Errorf("element %d is not a struct", i))
		}
		keys := make([]string, 0, len(s.GetFields()))
		for k := range s.GetFields() {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		c := &contact.Contact{}
		for _, k := range keys {
			sv, ok := s.GetFields()[k].GetKind().(*structpb.Value_StringValue)
			if !ok {
				return nil, malformed("protobuf", fmt.Errorf("element %d key %q is not a string", i, k))
			}
			c.Set(k, sv.StringValue)
		}
		out = append(out, c)
	}
	return out, nil
}
