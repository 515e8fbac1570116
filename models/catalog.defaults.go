package models

const (
	oliveOilImageBase    = "https://customer-assets.emergentagent.com/job_8a2d9a0f-5241-493d-9731-b77954b88672/artifacts/"
	oilwoodImageBase     = "https://customer-assets.emergentagent.com/job_oilwood-fusion/artifacts/"
	dimensionsMortar     = "6/8/10/12/14/16/18 CM"
	dimensionsBoardRange = "20/25/30/35 CM"
)

func dimensions(value string) *string {
	return &value
}

// DefaultOliveOilProducts is the olive oil range shown while the catalog collection is empty.
// Items are active and ordered by position.
func DefaultOliveOilProducts() []OliveOilProduct {
	products := []OliveOilProduct{
		{
			ID:            "oil-250ml",
			SKU:           "TOO-250",
			NameEN:        "250ml Bottle",
			NameFR:        "Bouteille 250ml",
			Size:          "250ml / 8.45 fl oz",
			DescriptionEN: "Perfect for personal use or as a gift",
			DescriptionFR: "Parfait pour un usage personnel ou comme cadeau",
			Image:         oliveOilImageBase + "rxzvc8pm_Image%202026-01-14%20at%2011.04.12%20AM%20%282%29.jpeg",
		},
		{
			ID:            "oil-500ml",
			SKU:           "TOO-500",
			NameEN:        "500ml Bottle",
			NameFR:        "Bouteille 500ml",
			Size:          "500ml / 16.9 fl oz",
			DescriptionEN: "Ideal size for regular cooking needs",
			DescriptionFR: "Taille idéale pour les besoins de cuisson réguliers",
			Image:         oilwoodImageBase + "xdffe8un_500%20ml.jpg",
		},
		{
			ID:            "oil-750ml",
			SKU:           "TOO-750",
			NameEN:        "750ml Bottle",
			NameFR:        "Bouteille 750ml",
			Size:          "750ml / 25.4 fl oz",
			DescriptionEN: "Popular choice for household cooking",
			DescriptionFR: "Choix populaire pour la cuisine familiale",
			Image:         oliveOilImageBase + "ovii6g2w_Image%202026-01-14%20at%2011.04.12%20AM%20%281%29.jpeg",
		},
		{
			ID:            "oil-1l",
			SKU:           "TOO-1000",
			NameEN:        "1L Bottle",
			NameFR:        "Bouteille 1L",
			Size:          "1L / 33.81 fl oz",
			DescriptionEN: "Best value for everyday use",
			DescriptionFR: "Meilleur rapport qualité-prix pour un usage quotidien",
			Image:         oliveOilImageBase + "jbnqgx2x_Image%202026-01-14%20at%2011.04.09%20AM%20%281%29.jpeg",
		},
		{
			ID:            "oil-3l",
			SKU:           "TOO-3000",
			NameEN:        "3L Tin",
			NameFR:        "Bidon 3L",
			Size:          "3L / 101.44 fl oz",
			DescriptionEN: "Family size for frequent cooking",
			DescriptionFR: "Format familial pour une cuisson fréquente",
			Image:         oilwoodImageBase + "pzhqk6dm_3l.jpg",
		},
		{
			ID:            "oil-5l",
			SKU:           "TOO-5000",
			NameEN:        "5L Tin",
			NameFR:        "Bidon 5L",
			Size:          "5L / 169.07 fl oz",
			DescriptionEN: "Professional size for restaurants & bulk buyers",
			DescriptionFR: "Format professionnel pour restaurants et acheteurs en gros",
			Image:         oliveOilImageBase + "s0xiozcb_Image%202026-01-14%20at%2011.04.08%20AM%20%281%29.jpeg",
		},
	}
	for i := range products {
		products[i].Active = true
		products[i].Order = i
	}
	return products
}

// DefaultKitchenwareProducts is the olive wood range shown while the catalog collection is empty.
func DefaultKitchenwareProducts() []KitchenwareProduct {
	products := []KitchenwareProduct{
		{
			ID:            "classic-cup",
			Reference:     "T13",
			NameEN:        "Classic Wine Cup",
			NameFR:        "Coupe Classique",
			DescriptionEN: "Elegant wine goblet handcrafted from premium olive wood",
			DescriptionFR: "Élégant verre à vin façonné à la main en bois d'olivier de qualité",
			Image:         oilwoodImageBase + "6xmzcof6_Classic%20Wine%20Cup%20REF%20T13.jpg",
		},
		{
			ID:            "cutting-board",
			Reference:     "P02",
			NameEN:        "Irregular Cutting Board",
			NameFR:        "Planche à Découper Irrégulière",
			Dimensions:    dimensions("25/30/35/40/45 CM"),
			DescriptionEN: "Natural edge cutting board with unique wood grain patterns",
			DescriptionFR: "Planche à bord naturel aux veines de bois uniques",
			Image:         oilwoodImageBase + "3w9avqvz_Cutting%20Board%20REF%20P02.jpg",
		},
		{
			ID:            "flat-mortar",
			Reference:     "M03",
			NameEN:        "Flat Mortar",
			NameFR:        "Mortier Plat",
			Dimensions:    dimensions(dimensionsMortar),
			DescriptionEN: "Traditional mortar & pestle for grinding spices and herbs",
			DescriptionFR: "Mortier et pilon traditionnels pour broyer épices et herbes",
			Image:         oilwoodImageBase + "hg47jtoq_Flat%20Mortard.jpg",
		},
		{
			ID:            "heart-dish",
			Reference:     "B08",
			NameEN:        "Heart Dish",
			NameFR:        "Plat Cœur",
			DescriptionEN: "Beautiful heart-shaped serving dish for special occasions",
			DescriptionFR: "Joli plat de service en forme de cœur pour les grandes occasions",
			Image:         oilwoodImageBase + "h1ifnun3_Heart%20Dish%20REF%20B08.jpg",
		},
		{
			ID:            "round-mortar",
			Reference:     "M01",
			NameEN:        "Round Mortar",
			NameFR:        "Mortier Rond",
			Dimensions:    dimensions(dimensionsMortar),
			DescriptionEN: "Classic round mortar & pestle perfect for crushing herbs and spices",
			DescriptionFR: "Mortier rond classique idéal pour écraser herbes et épices",
			Image:         oilwoodImageBase + "depri7sw_Round%20Mortard%20REF%20M01.jpg",
		},
		{
			ID:            "rustic-chess",
			Reference:     "J01",
			NameEN:        "Rustic Chess Games",
			NameFR:        "Jeux d'Echecs Rustique",
			Dimensions:    dimensions("30/37/50 CM"),
			DescriptionEN: "Handcrafted olive wood chess set with natural rustic edge",
			DescriptionFR: "Jeu d'échecs en bois d'olivier fait main au bord rustique naturel",
			Image:         oilwoodImageBase + "6su95ih4_Rustic%20Chess%20Games.jpg",
		},
		{
			ID:            "cutting-board-set",
			Reference:     "K04",
			NameEN:        "Set of 3 Cutting Board",
			NameFR:        "3 Planches de Découpage",
			DescriptionEN: "Set of three olive wood cutting boards in various sizes",
			DescriptionFR: "Lot de trois planches à découper en bois d'olivier de tailles variées",
			Image:         oilwoodImageBase + "ublmw7w9_Set%20of%203%20Cutting%20Board.jpg",
		},
		{
			ID:            "oval-dish-set",
			Reference:     "B12",
			NameEN:        "Set of 3 Oval Dipping Dish",
			NameFR:        "Kit de 3 Plats Ovale",
			DescriptionEN: "Elegant oval dipping dishes perfect for appetizers and sauces",
			DescriptionFR: "Élégants plats ovales parfaits pour les apéritifs et les sauces",
			Image:         oilwoodImageBase + "gvi5wag7_Set%20of%203%20Oval%20Dipping%20Dish%20Ref%20B12.jpg",
		},
		{
			ID:            "spoon-set",
			Reference:     "S16",
			NameEN:        "Spoon Table Set",
			NameFR:        "Couvert de Cuillère",
			Dimensions:    dimensions(dimensionsBoardRange),
			DescriptionEN: "Complete olive wood spoon and fork set for serving",
			DescriptionFR: "Ensemble complet de cuillères et fourchettes de service en bois d'olivier",
			Image:         oilwoodImageBase + "5be4zzh9_Spoon%20Table%20REF%20S16.jpg",
		},
		{
			ID:            "rectangular-board",
			Reference:     "P06",
			NameEN:        "Rectangular Board",
			NameFR:        "Planche Rectangulaire",
			Dimensions:    dimensions(dimensionsBoardRange),
			DescriptionEN: "Classic rectangular cutting board with natural olive wood grain",
			DescriptionFR: "Planche rectangulaire classique au grain naturel de bois d'olivier",
			Image:         oilwoodImageBase + "vn5553ii_Rectangular%20Board.jpg",
		},
		{
			ID:            "rectangular-classic-board",
			Reference:     "P07",
			NameEN:        "Rectangular Classic Board",
			NameFR:        "Planche Rectangulaire Classique",
			Dimensions:    dimensions(dimensionsBoardRange),
			DescriptionEN: "Elegant classic rectangular board perfect for serving and cutting",
			DescriptionFR: "Élégante planche rectangulaire pour servir et découper",
			Image:         oilwoodImageBase + "b2b49s7q_Rectangular%20Classic%20Board.jpg",
		},
	}
	for i := range products {
		products[i].Active = true
		products[i].Order = i
	}
	return products
}
