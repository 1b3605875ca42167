package lookup

import "strings"

// coreModule lists what a core package exposes through `exposing (..)`.
type coreModule struct {
	values    []string
	operators []string

	// types maps each custom type to its constructors.
	types map[string][]string
}

var catalogue = map[string]coreModule{
	"Basics": {
		values: strings.Fields(`
			toFloat round floor ceiling truncate max min compare not xor
			modBy remainderBy negate abs clamp sqrt logBase e pi cos sin tan
			acos asin atan atan2 degrees radians turns toPolar fromPolar
			isNaN isInfinite identity always never`),
		operators: strings.Fields(`+ - * / // ^ == /= < > <= >= && || ++ <| |> << >>`),
		types: map[string][]string{
			"Bool":  {"True", "False"},
			"Order": {"LT", "EQ", "GT"},
			"Int":   nil,
			"Float": nil,
			"Never": nil,
		},
	},
	"List": {
		values: strings.Fields(`
			singleton repeat range map indexedMap foldl foldr filter filterMap
			length reverse member all any maximum minimum sum product append
			concat concatMap intersperse map2 map3 map4 map5 sort sortBy
			sortWith isEmpty head tail take drop partition unzip`),
		operators: []string{"::"},
		types:     map[string][]string{"List": nil},
	},
	"Maybe": {
		values: strings.Fields(`withDefault map map2 map3 map4 map5 andThen`),
		types:  map[string][]string{"Maybe": {"Just", "Nothing"}},
	},
	"Result": {
		values: strings.Fields(`map map2 map3 map4 map5 andThen withDefault toMaybe fromMaybe mapError`),
		types:  map[string][]string{"Result": {"Ok", "Err"}},
	},
	"String": {
		values: strings.Fields(`
			isEmpty length reverse repeat replace append concat split join
			words lines slice left right dropLeft dropRight contains startsWith
			endsWith indexes indices toInt fromInt toFloat fromFloat fromChar
			cons uncons toList fromList toUpper toLower pad padLeft padRight
			trim trimLeft trimRight map filter foldl foldr any all`),
		types: map[string][]string{"String": nil},
	},
	"Char": {
		values: strings.Fields(`
			isUpper isLower isAlpha isAlphaNum isDigit isOctDigit isHexDigit
			toUpper toLower toLocaleUpper toLocaleLower toCode fromCode`),
		types: map[string][]string{"Char": nil},
	},
	"Tuple": {
		values: strings.Fields(`pair first second mapFirst mapSecond mapBoth`),
	},
	"Debug": {
		values: strings.Fields(`toString log todo`),
	},
	"Dict": {
		values: strings.Fields(`
			empty singleton insert update remove isEmpty member get size keys
			values toList fromList map foldl foldr filter partition union
			intersect diff merge`),
		types: map[string][]string{"Dict": nil},
	},
	"Set": {
		values: strings.Fields(`
			empty singleton insert remove isEmpty member size union intersect
			diff toList fromList map foldl foldr filter partition`),
		types: map[string][]string{"Set": nil},
	},
	"Array": {
		values: strings.Fields(`
			empty initialize repeat fromList isEmpty length get set push append
			slice toList toIndexedList map indexedMap foldl foldr filter`),
		types: map[string][]string{"Array": nil},
	},
	"Platform.Cmd": {
		values: strings.Fields(`none batch map`),
		types:  map[string][]string{"Cmd": nil},
	},
	"Platform.Sub": {
		values: strings.Fields(`none batch map`),
		types:  map[string][]string{"Sub": nil},
	},
}

// defaultImport is an import every module has implicitly.
type defaultImport struct {
	module    string
	alias     string
	exposeAll bool
	values    []string
	types     []string

	// typesWithConstructors are exposed as `Type(..)`.
	typesWithConstructors []string
}

var defaultImports = []defaultImport{
	{module: "Basics", exposeAll: true},
	{module: "List", types: []string{"List"}, values: []string{"::"}},
	{module: "Maybe", typesWithConstructors: []string{"Maybe"}},
	{module: "Result", typesWithConstructors: []string{"Result"}},
	{module: "String", types: []string{"String"}},
	{module: "Char", types: []string{"Char"}},
	{module: "Tuple"},
	{module: "Debug"},
	{module: "Platform", types: []string{"Program"}},
	{module: "Platform.Cmd", alias: "Cmd", types: []string{"Cmd"}},
	{module: "Platform.Sub", alias: "Sub", types: []string{"Sub"}},
}
