package wxhist

// Field identifies a weather measurement the extractor always looks for.
// The set is closed; its declaration order is the output column order.
type Field int

// Field constants.
const (
	FieldTime Field = iota
	FieldTemperature
	FieldDewPoint
	FieldHumidity
	FieldPressure
	FieldVisibility
	FieldWindDirection
	FieldWindSpeed
	FieldGustSpeed
	FieldPrecipitation
	FieldEvents
	FieldConditions
	FieldWindChill

	fieldCount
)

type fieldInfo struct {
	name     string
	keywords []string
	numeric  bool
	excluded bool
}

var fields = [fieldCount]fieldInfo{
	FieldTime: {
		name: "time",
		keywords: []string{
			"Time (EET)", "Time (EEST)",
			"Time (CET)", "Time (CEST)",
			"Time (GMT)", "Time (BST)", "Time (UTC)",
			"Time (EST)", "Time (EDT)",
			"Time (CST)", "Time (CDT)",
			"Time (MST)", "Time (MDT)",
			"Time (PST)", "Time (PDT)",
		},
	},
	FieldTemperature:   {name: "temperature", keywords: []string{"Temp."}, numeric: true},
	FieldDewPoint:      {name: "dew_point", keywords: []string{"Dew Point"}, numeric: true},
	FieldHumidity:      {name: "humidity", keywords: []string{"Humidity"}, numeric: true},
	FieldPressure:      {name: "pressure", keywords: []string{"Pressure"}, numeric: true},
	FieldVisibility:    {name: "visibility", keywords: []string{"Visibility"}, numeric: true},
	FieldWindDirection: {name: "wind_direction", keywords: []string{"Wind Dir"}},
	FieldWindSpeed:     {name: "wind_speed", keywords: []string{"Wind Speed"}},
	FieldGustSpeed:     {name: "gust_speed", keywords: []string{"Gust Speed"}, numeric: true},
	FieldPrecipitation: {name: "precipitation", keywords: []string{"Precip"}},
	FieldEvents:        {name: "events", keywords: []string{"Events"}},
	FieldConditions:    {name: "conditions", keywords: []string{"Conditions"}},
	FieldWindChill:     {name: "wind_chill", keywords: []string{"Windchill"}, excluded: true},
}

// Fields returns every field in output order.
func Fields() []Field {
	a := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		a = append(a, f)
	}
	return a
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// String returns the field name.
func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fields[f].name
}

// Keywords returns the header texts that identify the field, highest
// priority first. The returned slice is a copy.
func (f Field) Keywords() []string {
	if !f.Valid() {
		return nil
	}
	return append([]string(nil), fields[f].keywords...)
}

// Excluded reports whether the field is dropped from output even when the
// page carries it.
func (f Field) Excluded() bool {
	return f.Valid() && fields[f].excluded
}

// Numeric reports whether values of the field are always cut down to their
// leading numeric run. Wind speed is numeric only when it holds a digit and
// is handled by Normalize.
func (f Field) Numeric() bool {
	return f.Valid() && fields[f].numeric
}
