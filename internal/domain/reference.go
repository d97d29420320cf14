package domain

// Reference holds the read-only lookup data loaded once at process start.
type Reference struct {
	Cities       []City
	Districts    map[string][]District
	ProductTypes []ProductType

	cityNames     map[string]string
	districtNames map[string]map[string]string
	emojis        map[string]string
}

func NewReference(cities []City, districts []District, types []ProductType) *Reference {
	ref := &Reference{
		Cities:        cities,
		Districts:     make(map[string][]District),
		ProductTypes:  types,
		cityNames:     make(map[string]string, len(cities)),
		districtNames: make(map[string]map[string]string),
		emojis:        make(map[string]string, len(types)),
	}
	for _, c := range cities {
		ref.cityNames[c.ID] = c.Name
	}
	for _, d := range districts {
		ref.Districts[d.CityID] = append(ref.Districts[d.CityID], d)
		if ref.districtNames[d.CityID] == nil {
			ref.districtNames[d.CityID] = make(map[string]string)
		}
		ref.districtNames[d.CityID][d.ID] = d.Name
	}
	for _, t := range types {
		ref.emojis[t.Name] = t.Emoji
	}
	return ref
}

// CityName maps a city id to its display name, falling back to the id itself.
func (r *Reference) CityName(cityID string) string {
	if name, ok := r.cityNames[cityID]; ok {
		return name
	}
	return cityID
}

func (r *Reference) DistrictName(cityID, districtID string) string {
	if name, ok := r.districtNames[cityID][districtID]; ok {
		return name
	}
	return districtID
}

func (r *Reference) Emoji(productType string) string {
	if e, ok := r.emojis[productType]; ok && e != "" {
		return e
	}
	return DefaultEmoji
}
