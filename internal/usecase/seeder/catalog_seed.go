// Package seeder provides the built-in catalog used when no stored catalog exists.
package seeder

import (
	"coshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Wide images for the simulated 360 view.
const (
	panoramaInterior = "https://images.unsplash.com/photo-1618221195710-dd6b41faaea6?q=80&w=3200&auto=format&fit=crop"
	panoramaCar      = "https://images.unsplash.com/photo-1494976388531-d1058494cdd8?q=80&w=3200&auto=format&fit=crop"
	panoramaYacht    = "https://images.unsplash.com/photo-1567899378494-47b22a2ae96a?q=80&w=3200&auto=format&fit=crop"
)

// Fixed ids of the demo user's portfolio (one public, one private).
const (
	DemoPublicAssetID  = "user-public-1"
	DemoPrivateAssetID = "user-private-1"
)

type seedAsset struct {
	id          string
	name        string
	category    entity.Category
	location    string
	totalValue  int64
	sharePrice  int64
	funded      int64
	imageURL    string
	panoramaURL string
	description string
	specs       []entity.Spec
	goldenVisa  bool
	ownerID     string
	visibility  entity.Visibility
}

// CatalogSeed returns a fresh copy of the seed catalog in display order.
func CatalogSeed() []*entity.Asset {
	rows := seedRows()
	assets := make([]*entity.Asset, 0, len(rows))

	for _, row := range rows {
		assets = append(assets, &entity.Asset{
			ID:               row.id,
			Name:             row.name,
			Category:         row.category,
			Location:         row.location,
			TotalValue:       decimal.NewFromInt(row.totalValue),
			SharePrice:       decimal.NewFromInt(row.sharePrice),
			FundedPercentage: decimal.NewFromInt(row.funded),
			ImageURL:         row.imageURL,
			Gallery:          append([]string{row.imageURL}, categoryImages(row.category)...),
			PanoramaURL:      row.panoramaURL,
			Description:      row.description,
			Specs:            append([]entity.Spec{}, row.specs...),
			IsGoldenVisa:     row.goldenVisa,
			OwnerID:          row.ownerID,
			Visibility:       row.visibility,
		})
	}

	return assets
}

func seedRows() []seedAsset {
	return []seedAsset{
		{
			id:          DemoPublicAssetID,
			name:        "Patek Philippe Nautilus 5711/1A",
			category:    entity.CategoryWatch,
			location:    "Geneva Vault",
			totalValue:  145000,
			sharePrice:  18125,
			funded:      100,
			imageURL:    "https://images.unsplash.com/photo-1639037233857-7977a4939a3f?q=80&w=1200&auto=format&fit=crop",
			description: "The discontinued blue dial steel Nautilus. A horological icon. Held in a secure bonded warehouse in Geneva.",
			specs:       []entity.Spec{{Label: "Ref", Value: "5711/1A-010"}, {Label: "Year", Value: "2019"}},
			ownerID:     entity.DemoUserID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          DemoPrivateAssetID,
			name:        "Aston Martin DB4 Series II",
			category:    entity.CategoryClassic,
			location:    "London, UK",
			totalValue:  450000,
			sharePrice:  56250,
			funded:      100,
			imageURL:    "https://images.unsplash.com/photo-1541348263662-e068662d82af?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "Family heirloom. Series II with the heavy duty bumper and large oil sump. Restored in 2018.",
			specs:       []entity.Spec{{Label: "Year", Value: "1960"}, {Label: "Engine", Value: "3.7L I6"}},
			ownerID:     entity.DemoUserID,
			visibility:  entity.VisibilityPrivate,
		},
		{
			id:          "re-1",
			name:        "Palm Jumeirah Signature Villa",
			category:    entity.CategoryRealEstate,
			location:    "Dubai, UAE",
			totalValue:  12500000,
			sharePrice:  1562500,
			funded:      85,
			imageURL:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaInterior,
			description: "Located on the exclusive Frond N, this Signature Villa offers direct beach access and panoramic views of the Atlantis. Recently renovated with contemporary Italian furnishings.",
			specs:       []entity.Spec{{Label: "Area", Value: "7,000 sqft"}, {Label: "Beds", Value: "6"}},
			goldenVisa:  true,
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "re-2",
			name:        "Downtown Dubai Penthouse",
			category:    entity.CategoryRealEstate,
			location:    "Dubai, UAE",
			totalValue:  8000000,
			sharePrice:  1000000,
			funded:      40,
			imageURL:    "https://images.unsplash.com/photo-1512453979798-5ea904f8486d?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaInterior,
			description: "A triplex penthouse in the heart of Downtown, featuring a private pool and direct views of the Burj Khalifa. Includes 24/7 valet and concierge services.",
			specs:       []entity.Spec{{Label: "View", Value: "Burj Khalifa"}, {Label: "Type", Value: "Duplex"}},
			goldenVisa:  true,
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "re-3",
			name:        "Courchevel 1850 Chalet",
			category:    entity.CategoryRealEstate,
			location:    "French Alps",
			totalValue:  15000000,
			sharePrice:  1875000,
			funded:      10,
			imageURL:    "https://images.unsplash.com/photo-1516455590571-18256e5bb9ff?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaInterior,
			description: "Ski-in/ski-out luxury chalet in the prestigious Jardin Alpin sector. Features a private spa, cinema room, and wine cellar.",
			specs:       []entity.Spec{{Label: "Ski-in", Value: "Yes"}, {Label: "Staff", Value: "Included"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "sc-1",
			name:        "Ferrari SF90 Stradale",
			category:    entity.CategorySupercar,
			location:    "Monaco",
			totalValue:  600000,
			sharePrice:  75000,
			funded:      92,
			imageURL:    "https://images.unsplash.com/photo-1592198084033-aade902d1aae?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The first series production PHEV Spider from the Prancing Horse. 1000cv of power, open-top driving thrill, and zero-emission city driving mode.",
			specs:       []entity.Spec{{Label: "0-100", Value: "2.5s"}, {Label: "Engine", Value: "V8 Hybrid"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "sc-2",
			name:        "Lamborghini Revuelto",
			category:    entity.CategorySupercar,
			location:    "Dubai, UAE",
			totalValue:  650000,
			sharePrice:  81250,
			funded:      60,
			imageURL:    "https://images.unsplash.com/photo-1544605972-e2d85f67530c?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The first High Performance Electrified Vehicle (HPEV) hybrid super sports car. A V12 engine coupled with three electric motors.",
			specs:       []entity.Spec{{Label: "Power", Value: "1001 HP"}, {Label: "Engine", Value: "V12 Hybrid"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "cl-1",
			name:        "Mercedes-Benz 300 SL \"Gullwing\"",
			category:    entity.CategoryClassic,
			location:    "Stuttgart, Germany",
			totalValue:  1800000,
			sharePrice:  225000,
			funded:      75,
			imageURL:    "https://images.unsplash.com/photo-1511527661048-7fe2b55819a0?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "A pristine example of the automotive icon. Finished in Silver Grey Metallic with original red leather interior. Full matching numbers.",
			specs:       []entity.Spec{{Label: "Year", Value: "1955"}, {Label: "Condition", Value: "Concours"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "cl-2",
			name:        "Classic Mini Cooper S",
			category:    entity.CategoryClassic,
			location:    "London, UK",
			totalValue:  90000,
			sharePrice:  11250,
			funded:      100,
			imageURL:    "https://images.unsplash.com/photo-1532585640366-0e0600a94420?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The definitive 60s icon. 1967 Morris Mini-Cooper S Mk I. Rally-winning heritage in Almond Green.",
			specs:       []entity.Spec{{Label: "Year", Value: "1967"}, {Label: "Engine", Value: "1275cc"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "cl-3",
			name:        "Porsche 911 (1963)",
			category:    entity.CategoryClassic,
			location:    "Zurich, Switzerland",
			totalValue:  320000,
			sharePrice:  40000,
			funded:      60,
			imageURL:    "https://images.unsplash.com/photo-1511919884226-fd3cad34687c?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "One of the earliest 911s produced. Type 901 chassis. Air-cooled flat-six, completely restored to factory specifications.",
			specs:       []entity.Spec{{Label: "Year", Value: "1963"}, {Label: "Model", Value: "901/911"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "cl-4",
			name:        "Ford Mustang (1964 1/2)",
			category:    entity.CategoryClassic,
			location:    "Los Angeles, USA",
			totalValue:  80000,
			sharePrice:  10000,
			funded:      25,
			imageURL:    "https://images.unsplash.com/photo-1584345604476-8ec5e12e42dd?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The original Pony Car. Wimbledon White convertible with the 289 V8 engine option. A true piece of Americana.",
			specs:       []entity.Spec{{Label: "Year", Value: "1964"}, {Label: "Engine", Value: "289 V8"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "cl-5",
			name:        "Jaguar E-Type Series 1",
			category:    entity.CategoryClassic,
			location:    "Coventry, UK",
			totalValue:  240000,
			sharePrice:  30000,
			funded:      90,
			imageURL:    "https://images.unsplash.com/photo-1622199709774-68340dfbb3df?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "1961 Series 1 3.8L Coupe. Opalescent Gunmetal with Red interior. The most beautiful car ever made.",
			specs:       []entity.Spec{{Label: "Year", Value: "1961"}, {Label: "Engine", Value: "3.8L I6"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "off-1",
			name:        "Mercedes-Benz G-Class (W460)",
			category:    entity.CategoryOffroad,
			location:    "Gstaad, Switzerland",
			totalValue:  180000,
			sharePrice:  22500,
			funded:      65,
			imageURL:    "https://images.unsplash.com/photo-1559416523-140ddc3d238c?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The original Geländewagen. A perfectly restored 1982 280GE with plaid interior. Unstoppable capability meets vintage utilitarian charm.",
			specs:       []entity.Spec{{Label: "Year", Value: "1982"}, {Label: "Engine", Value: "2.8L I6"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "off-2",
			name:        "Suzuki Jimny Heritage",
			category:    entity.CategoryOffroad,
			location:    "Okinawa, Japan",
			totalValue:  40000,
			sharePrice:  5000,
			funded:      90,
			imageURL:    "https://images.unsplash.com/photo-1606256258909-5e1975b9671d?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "A cult classic. This pristine Jimny Sierra features the coveted open-top design and rugged lightweight chassis that defined a generation.",
			specs:       []entity.Spec{{Label: "Model", Value: "LJ80"}, {Label: "Roof", Value: "Soft Top"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "off-3",
			name:        "Peec Studio Custom",
			category:    entity.CategoryOffroad,
			location:    "Dubai, UAE",
			totalValue:  120000,
			sharePrice:  15000,
			funded:      45,
			imageURL:    "https://images.unsplash.com/photo-1563276632-15a9957c7908?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "A unique bespoke build by Peec Studio. Reimagined for the modern era with upgraded suspension, bespoke leather interior, and electric powertrain conversion.",
			specs:       []entity.Spec{{Label: "Build", Value: "Custom"}, {Label: "Power", Value: "EV Conv"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "off-4",
			name:        "Toyota Land Cruiser FJ40",
			category:    entity.CategoryOffroad,
			location:    "California, USA",
			totalValue:  140000,
			sharePrice:  17500,
			funded:      80,
			imageURL:    "https://images.unsplash.com/photo-1600329668735-3733c042337e?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The definitive 4x4. Restored frame-off to museum quality in Nebula Green. Features the legendary F-engine and original jump seats.",
			specs:       []entity.Spec{{Label: "Year", Value: "1978"}, {Label: "Engine", Value: "4.2L I6"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "off-5",
			name:        "Land Rover Defender 110",
			category:    entity.CategoryOffroad,
			location:    "Cotswolds, UK",
			totalValue:  160000,
			sharePrice:  20000,
			funded:      55,
			imageURL:    "https://images.unsplash.com/photo-1506015391300-4802dc74de2e?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "A rugged icon. Late model Defender 110 configured for overland expeditions. Features pop-top tent, external cage, and winch.",
			specs:       []entity.Spec{{Label: "Series", Value: "110"}, {Label: "Engine", Value: "Td5"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "y-1",
			name:        "Riva 88' Folgore",
			category:    entity.CategoryYacht,
			location:    "Cannes, France",
			totalValue:  6500000,
			sharePrice:  812500,
			funded:      5,
			imageURL:    "https://images.unsplash.com/photo-1567899378494-47b22a2ae96a?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaYacht,
			description: "Italian style meets carbon fiber technology. The 88' Folgore features a revolutionary hull design and bespoke interior finishes.",
			specs:       []entity.Spec{{Label: "Length", Value: "88 ft"}, {Label: "Cabins", Value: "4"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "j-1",
			name:        "HondaJet Elite II",
			category:    entity.CategoryJet,
			location:    "London, UK",
			totalValue:  7000000,
			sharePrice:  875000,
			funded:      30,
			imageURL:    "https://images.unsplash.com/photo-1583067675402-23f27f8a32d1?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaInterior,
			description: "The most advanced light jet in its class. Unmatched fuel efficiency and range, with a whisper-quiet cabin.",
			specs:       []entity.Spec{{Label: "Range", Value: "1,547 nm"}, {Label: "Pax", Value: "6"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "sb-1",
			name:        "Ducati Superleggera V4",
			category:    entity.CategorySuperbike,
			location:    "Bologna, Italy",
			totalValue:  100000,
			sharePrice:  12500,
			funded:      45,
			imageURL:    "https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?q=80&w=1200&auto=format&fit=crop",
			panoramaURL: panoramaCar,
			description: "The most powerful and technologically advanced production Ducati ever built. Carbon fiber frame, swingarm and wheels. 234 hp.",
			specs:       []entity.Spec{{Label: "Power", Value: "234 HP"}, {Label: "Weight", Value: "159 kg"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
		{
			id:          "art-1",
			name:        "Abstract Expressionist Triptych",
			category:    entity.CategoryArt,
			location:    "Geneva Freeport",
			totalValue:  2400000,
			sharePrice:  300000,
			funded:      20,
			imageURL:    entity.FallbackImageURL,
			description: "A museum-grade triptych held in a climate controlled freeport vault. Loans to partner institutions are arranged by the concierge.",
			specs:       []entity.Spec{{Label: "Medium", Value: "Oil on canvas"}, {Label: "Panels", Value: "3"}},
			ownerID:     entity.HouseOwnerID,
			visibility:  entity.VisibilityPublic,
		},
	}
}
