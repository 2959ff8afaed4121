package domain

// ZodiacSign is one of the twelve fixed signs, in ecliptic order from Aries.
type ZodiacSign string

const (
	SignAries       ZodiacSign = "Aries"
	SignTaurus      ZodiacSign = "Taurus"
	SignGemini      ZodiacSign = "Gemini"
	SignCancer      ZodiacSign = "Cancer"
	SignLeo         ZodiacSign = "Leo"
	SignVirgo       ZodiacSign = "Virgo"
	SignLibra       ZodiacSign = "Libra"
	SignScorpio     ZodiacSign = "Scorpio"
	SignSagittarius ZodiacSign = "Sagittarius"
	SignCapricorn   ZodiacSign = "Capricorn"
	SignAquarius    ZodiacSign = "Aquarius"
	SignPisces      ZodiacSign = "Pisces"
)

// ZodiacSigns lists all twelve signs in ecliptic order.
// Index i covers longitudes [i*30, (i+1)*30).
var ZodiacSigns = []ZodiacSign{
	SignAries, SignTaurus, SignGemini, SignCancer, SignLeo, SignVirgo,
	SignLibra, SignScorpio, SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
}

// Element is one of the four classical elements.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementWater Element = "Water"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
)

// Elements lists the four elements in the order used throughout
// balance vectors and reports.
var Elements = []Element{ElementFire, ElementWater, ElementEarth, ElementAir}

// signElements is the fixed sign→element triplicity table.
var signElements = map[ZodiacSign]Element{
	SignAries: ElementFire, SignLeo: ElementFire, SignSagittarius: ElementFire,
	SignTaurus: ElementEarth, SignVirgo: ElementEarth, SignCapricorn: ElementEarth,
	SignGemini: ElementAir, SignLibra: ElementAir, SignAquarius: ElementAir,
	SignCancer: ElementWater, SignScorpio: ElementWater, SignPisces: ElementWater,
}

// Element returns the sign's triplicity element.
func (s ZodiacSign) Element() Element {
	return signElements[s]
}

// ZodiacPlacement is a normalized position on the ecliptic.
// Derived, never stored. Invariant: Sign = ZodiacSigns[floor(lon/30)],
// DegreeInSign = lon mod 30 with lon reduced to [0,360).
type ZodiacPlacement struct {
	Sign         ZodiacSign
	DegreeInSign float64 // [0, 30)
	Element      Element
}

// Longitude reconstructs the absolute ecliptic longitude in [0,360).
func (z ZodiacPlacement) Longitude() float64 {
	for i, s := range ZodiacSigns {
		if s == z.Sign {
			return float64(i)*30 + z.DegreeInSign
		}
	}
	return z.DegreeInSign
}
