package mjai

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Yaku is one scoring condition and the han it contributed.
type Yaku struct {
	Name string `json:"name" yaml:"name"`
	Han  int    `json:"han" yaml:"han"`
}

// YakuList is the normalized form of a hora's yaku field. Logs write it in
// one of three shapes, all decoded into the same pair list:
//
//	[1, 1, 7, 1]                    alternating Tenhou id / han
//	[["Riichi", 1], ["Pinfu", 1]]   name / han pairs
//	["Riichi", "Pinfu"]             bare names, han unknown (0)
//
// Lists written back out use objects, which decode as well.
type YakuList []Yaku

// ErrYakuShape is returned when a yaku list mixes shapes or holds values of
// an unexpected kind.
var ErrYakuShape = errors.New("unrecognized yaku list shape")

// Han returns the summed han of all entries.
func (l YakuList) Han() int {
	total := 0
	for _, y := range l {
		total += y.Han
	}
	return total
}

// Names returns the yaku names in order.
func (l YakuList) Names() []string {
	names := make([]string, len(l))
	for i, y := range l {
		names[i] = y.Name
	}
	return names
}

// UnmarshalJSON detects the list shape from its first element and decodes
// every element under that shape.
func (l *YakuList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding yaku list: %w", err)
	}
	if len(raw) == 0 {
		*l = YakuList{}
		return nil
	}

	var (
		out YakuList
		err error
	)
	switch leadingByte(raw[0]) {
	case '[':
		out, err = decodePairs(raw)
	case '"':
		out, err = decodeNames(raw)
	case '{':
		out, err = decodeObjects(raw)
	default:
		out, err = decodeAlternating(raw)
	}
	if err != nil {
		return err
	}
	*l = out
	return nil
}

func decodePairs(raw []jsoniter.RawMessage) (YakuList, error) {
	out := make(YakuList, 0, len(raw))
	for i, elem := range raw {
		var pair []jsoniter.RawMessage
		if err := json.Unmarshal(elem, &pair); err != nil || len(pair) == 0 {
			return nil, fmt.Errorf("%w: element %d is not a [name, han] pair", ErrYakuShape, i)
		}

		var y Yaku
		switch leadingByte(pair[0]) {
		case '"':
			if err := json.Unmarshal(pair[0], &y.Name); err != nil {
				return nil, fmt.Errorf("%w: element %d name: %v", ErrYakuShape, i, err)
			}
		default:
			id, err := decodeInt(pair[0])
			if err != nil {
				return nil, fmt.Errorf("%w: element %d name: %v", ErrYakuShape, i, err)
			}
			y.Name = TenhouYakuName(id)
		}

		if len(pair) > 1 {
			han, err := decodeInt(pair[1])
			if err != nil {
				return nil, fmt.Errorf("%w: element %d han: %v", ErrYakuShape, i, err)
			}
			y.Han = han
		}
		out = append(out, y)
	}
	return out, nil
}

func decodeNames(raw []jsoniter.RawMessage) (YakuList, error) {
	out := make(YakuList, 0, len(raw))
	for i, elem := range raw {
		var name string
		if err := json.Unmarshal(elem, &name); err != nil {
			return nil, fmt.Errorf("%w: element %d is not a name", ErrYakuShape, i)
		}
		out = append(out, Yaku{Name: name})
	}
	return out, nil
}

// decodeObjects reads the {"name", "han"} form this package writes.
func decodeObjects(raw []jsoniter.RawMessage) (YakuList, error) {
	out := make(YakuList, 0, len(raw))
	for i, elem := range raw {
		if leadingByte(elem) != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrYakuShape, i)
		}
		var y Yaku
		if err := json.Unmarshal(elem, &y); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrYakuShape, i, err)
		}
		out = append(out, y)
	}
	return out, nil
}

func decodeAlternating(raw []jsoniter.RawMessage) (YakuList, error) {
	out := make(YakuList, 0, (len(raw)+1)/2)
	for i := 0; i < len(raw); i += 2 {
		id, err := decodeInt(raw[i])
		if err != nil {
			return nil, fmt.Errorf("%w: element %d is not a yaku id", ErrYakuShape, i)
		}
		y := Yaku{Name: TenhouYakuName(id)}
		if i+1 < len(raw) {
			han, err := decodeInt(raw[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: element %d is not a han value", ErrYakuShape, i+1)
			}
			y.Han = han
		}
		out = append(out, y)
	}
	return out, nil
}

func decodeInt(raw jsoniter.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	return int(f), nil
}

func leadingByte(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// tenhouYaku maps Tenhou yaku ids to the names the agari validator reports.
var tenhouYaku = map[int]string{
	0:  "Menzen Tsumo",
	1:  "Riichi",
	2:  "Ippatsu",
	3:  "Chankan (Robbing the Kan)",
	4:  "Rinshan Kaihou (After Kan)",
	5:  "Haitei Raoyue (Last Tile Draw)",
	6:  "Houtei Raoyui (Last Tile Discard)",
	7:  "Pinfu",
	8:  "Tanyao (All Simples)",
	9:  "Iipeikou (Pure Double Sequence)",
	10: "Yakuhai: East Wind",
	11: "Yakuhai: South Wind",
	12: "Yakuhai: West Wind",
	13: "Yakuhai: North Wind",
	14: "Yakuhai: East Wind",
	15: "Yakuhai: South Wind",
	16: "Yakuhai: West Wind",
	17: "Yakuhai: North Wind",
	18: "Yakuhai: White Dragon (Haku)",
	19: "Yakuhai: Green Dragon (Hatsu)",
	20: "Yakuhai: Red Dragon (Chun)",
	21: "Double Riichi",
	22: "Chiitoitsu (Seven Pairs)",
	23: "Chanta (Outside Hand)",
	24: "Ittsu (Pure Straight)",
	25: "Sanshoku Doujun (Mixed Triple Sequence)",
	26: "Sanshoku Doukou (Triple Triplets)",
	27: "San Kantsu (Three Kans)",
	28: "Toitoi (All Triplets)",
	29: "San Ankou (Three Concealed Triplets)",
	30: "Shousangen (Little Three Dragons)",
	31: "Honroutou (All Terminals and Honors)",
	32: "Ryanpeikou (Twice Pure Double Sequence)",
	33: "Junchan (Terminals in All Groups)",
	34: "Honitsu (Half Flush)",
	35: "Chinitsu (Full Flush)",
	36: "Renhou",
	37: "Tenhou (Heavenly Hand)",
	38: "Chiihou (Earthly Hand)",
	39: "Daisangen (Big Three Dragons)",
	40: "Suuankou (Four Concealed Triplets)",
	41: "Suuankou Tanki",
	42: "Tsuuiisou (All Honors)",
	43: "Ryuuiisou (All Green)",
	44: "Chinroutou (All Terminals)",
	45: "Chuuren Poutou (Nine Gates)",
	46: "Junsei Chuuren Poutou",
	47: "Kokushi Musou (Thirteen Orphans)",
	48: "Kokushi Juusanmen (Kokushi Musou 13-wait)",
	49: "Daisuushii (Big Four Winds)",
	50: "Shousuushii (Little Four Winds)",
	51: "Suu Kantsu (Four Kans)",
	52: "Dora",
	53: "Ura Dora",
	54: "Aka Dora",
}

// TenhouYakuName returns the name for a Tenhou yaku id, or the decimal id
// when the id is unknown.
func TenhouYakuName(id int) string {
	if name, ok := tenhouYaku[id]; ok {
		return name
	}
	return strconv.Itoa(id)
}
