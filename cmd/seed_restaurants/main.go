package main

import (
	"context"
	"log"

	"github.com/PeterSoManLung/FindDinning-sub001/config"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/database"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

var weekdayHours = models.OperatingHours{
	"monday":    {IsOpen: true, Open: "11:00", Close: "22:00"},
	"tuesday":   {IsOpen: true, Open: "11:00", Close: "22:00"},
	"wednesday": {IsOpen: true, Open: "11:00", Close: "22:00"},
	"thursday":  {IsOpen: true, Open: "11:00", Close: "22:00"},
	"friday":    {IsOpen: true, Open: "11:00", Close: "23:00"},
	"saturday":  {IsOpen: true, Open: "11:00", Close: "23:00"},
	"sunday":    {IsOpen: true, Open: "11:00", Close: "22:00"},
}

var seedRestaurants = []models.Restaurant{
	{
		Name:          "Golden Harbour Congee House",
		CuisineTypes:  models.JSONBStringArray{"Cantonese", "Comfort Food"},
		Latitude:      22.2855, Longitude: 114.1577,
		District:      "Central",
		PriceRange:    1,
		Rating:        4.4,
		NegativeScore: 0.08,
		ReviewCount:   612,
		Atmosphere:    models.JSONBStringArray{"casual", "familiar", "warm"},
		OperatingHours: models.OperatingHours{
			"monday":    {IsOpen: true, Open: "07:00", Close: "21:00"},
			"tuesday":   {IsOpen: true, Open: "07:00", Close: "21:00"},
			"wednesday": {IsOpen: true, Open: "07:00", Close: "21:00"},
			"thursday":  {IsOpen: true, Open: "07:00", Close: "21:00"},
			"friday":    {IsOpen: true, Open: "07:00", Close: "21:00"},
			"saturday":  {IsOpen: true, Open: "07:30", Close: "21:00"},
			"sunday":    {IsOpen: false},
		},
		MenuHighlights: models.MenuHighlights{
			{Name: "Century egg and pork congee"},
			{Name: "Plain rice congee", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
			{Name: "Fried dough sticks", DietaryTags: []string{"vegetarian"}},
		},
		IsLocalGem: true,
	},
	{
		Name:          "Maison Lumiere",
		CuisineTypes:  models.JSONBStringArray{"French", "Fine Dining"},
		Latitude:      22.2793, Longitude: 114.1628,
		District:      "Central",
		PriceRange:    5,
		Rating:        4.7,
		NegativeScore: 0.05,
		ReviewCount:   438,
		Atmosphere:    models.JSONBStringArray{"romantic", "elegant", "intimate"},
		OperatingHours: models.OperatingHours{
			"tuesday":   {IsOpen: true, Open: "18:00", Close: "23:00"},
			"wednesday": {IsOpen: true, Open: "18:00", Close: "23:00"},
			"thursday":  {IsOpen: true, Open: "18:00", Close: "23:00"},
			"friday":    {IsOpen: true, Open: "18:00", Close: "23:30"},
			"saturday":  {IsOpen: true, Open: "18:00", Close: "23:30"},
			"monday":    {IsOpen: false},
			"sunday":    {IsOpen: false},
		},
		MenuHighlights: models.MenuHighlights{
			{Name: "Duck confit"},
			{Name: "Ratatouille", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
		},
	},
	{
		Name:           "Tsim Sha Tsui Spice Market",
		CuisineTypes:   models.JSONBStringArray{"Thai", "Spicy Sichuan"},
		Latitude:       22.2976, Longitude: 114.1722,
		District:       "Tsim Sha Tsui",
		PriceRange:     2,
		Rating:         4.2,
		NegativeScore:  0.12,
		ReviewCount:    521,
		Atmosphere:     models.JSONBStringArray{"energetic", "casual", "vibrant"},
		OperatingHours: weekdayHours,
		MenuHighlights: models.MenuHighlights{
			{Name: "Mapo tofu", DietaryTags: []string{"vegetarian"}},
			{Name: "Green curry chicken", DietaryTags: []string{"gluten-free"}},
			{Name: "Dan dan noodles"},
		},
	},
	{
		Name:          "Harbour View Teppanyaki",
		CuisineTypes:  models.JSONBStringArray{"Japanese", "Korean BBQ"},
		Latitude:      22.2940, Longitude: 114.1695,
		District:      "Tsim Sha Tsui",
		PriceRange:    4,
		Rating:        4.6,
		NegativeScore: 0.07,
		ReviewCount:   389,
		Atmosphere:    models.JSONBStringArray{"upscale", "lively", "social"},
		OperatingHours: models.OperatingHours{
			"monday":    {IsOpen: true, Open: "17:30", Close: "23:00"},
			"tuesday":   {IsOpen: true, Open: "17:30", Close: "23:00"},
			"wednesday": {IsOpen: true, Open: "17:30", Close: "23:00"},
			"thursday":  {IsOpen: true, Open: "17:30", Close: "23:00"},
			"friday":    {IsOpen: true, Open: "17:30", Close: "01:00"},
			"saturday":  {IsOpen: true, Open: "17:30", Close: "01:00"},
			"sunday":    {IsOpen: true, Open: "17:30", Close: "22:30"},
		},
		MenuHighlights: models.MenuHighlights{
			{Name: "Wagyu teppanyaki set"},
			{Name: "Grilled seasonal vegetables", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
		},
	},
	{
		Name:           "Nonna Rosa Trattoria",
		CuisineTypes:   models.JSONBStringArray{"Italian", "Mediterranean"},
		Latitude:       22.2810, Longitude: 114.1554,
		District:       "Sheung Wan",
		PriceRange:     3,
		Rating:         4.5,
		NegativeScore:  0.09,
		ReviewCount:    447,
		Atmosphere:     models.JSONBStringArray{"cozy", "warm", "familiar"},
		OperatingHours: weekdayHours,
		MenuHighlights: models.MenuHighlights{
			{Name: "Margherita pizza", DietaryTags: []string{"vegetarian"}},
			{Name: "Gluten-free penne arrabbiata", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
			{Name: "Osso buco"},
		},
		IsLocalGem: true,
	},
	{
		Name:           "Mong Kok Dai Pai Dong",
		CuisineTypes:   models.JSONBStringArray{"Cantonese", "Street Food"},
		Latitude:       22.3193, Longitude: 114.1694,
		District:       "Mong Kok",
		PriceRange:     1,
		Rating:         4.1,
		NegativeScore:  0.15,
		ReviewCount:    833,
		Atmosphere:     models.JSONBStringArray{"bustling", "casual", "authentic"},
		OperatingHours: models.OperatingHours{
			"monday":    {IsOpen: true, Open: "18:00", Close: "02:00"},
			"tuesday":   {IsOpen: true, Open: "18:00", Close: "02:00"},
			"wednesday": {IsOpen: true, Open: "18:00", Close: "02:00"},
			"thursday":  {IsOpen: true, Open: "18:00", Close: "02:00"},
			"friday":    {IsOpen: true, Open: "18:00", Close: "03:00"},
			"saturday":  {IsOpen: true, Open: "18:00", Close: "03:00"},
			"sunday":    {IsOpen: true, Open: "18:00", Close: "01:00"},
		},
		MenuHighlights: models.MenuHighlights{
			{Name: "Clay pot rice"},
			{Name: "Stir-fried morning glory", DietaryTags: []string{"vegetarian", "vegan"}},
		},
		IsLocalGem: true,
	},
	{
		Name:           "The Greenhouse Table",
		CuisineTypes:   models.JSONBStringArray{"Healthy Light", "Mediterranean"},
		Latitude:       22.2780, Longitude: 114.1830,
		District:       "Wan Chai",
		PriceRange:     3,
		Rating:         4.3,
		NegativeScore:  0.06,
		ReviewCount:    294,
		Atmosphere:     models.JSONBStringArray{"calming", "quiet", "peaceful"},
		OperatingHours: weekdayHours,
		MenuHighlights: models.MenuHighlights{
			{Name: "Quinoa power bowl", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
			{Name: "Grilled halloumi salad", DietaryTags: []string{"vegetarian", "gluten-free"}},
			{Name: "Herbal chicken soup", DietaryTags: []string{"gluten-free"}},
		},
	},
	{
		Name:           "Seoul Ember",
		CuisineTypes:   models.JSONBStringArray{"Korean", "Korean BBQ"},
		Latitude:       22.2798, Longitude: 114.1852,
		District:       "Wan Chai",
		PriceRange:     3,
		Rating:         4.4,
		NegativeScore:  0.10,
		ReviewCount:    501,
		Atmosphere:     models.JSONBStringArray{"energetic", "social", "lively"},
		OperatingHours: weekdayHours,
		MenuHighlights: models.MenuHighlights{
			{Name: "Galbi short ribs"},
			{Name: "Bibimbap", DietaryTags: []string{"vegetarian"}},
			{Name: "Kimchi pancake", DietaryTags: []string{"vegetarian"}},
		},
	},
	{
		Name:           "Causeway Sweet Parlour",
		CuisineTypes:   models.JSONBStringArray{"Dessert", "Comfort Food"},
		Latitude:       22.2802, Longitude: 114.1862,
		District:       "Causeway Bay",
		PriceRange:     2,
		Rating:         4.0,
		NegativeScore:  0.11,
		ReviewCount:    376,
		Atmosphere:     models.JSONBStringArray{"cheerful", "casual", "familiar"},
		OperatingHours: models.OperatingHours{
			"monday":    {IsOpen: true, Open: "13:00", Close: "23:30"},
			"tuesday":   {IsOpen: true, Open: "13:00", Close: "23:30"},
			"wednesday": {IsOpen: true, Open: "13:00", Close: "23:30"},
			"thursday":  {IsOpen: true, Open: "13:00", Close: "23:30"},
			"friday":    {IsOpen: true, Open: "13:00", Close: "00:30"},
			"saturday":  {IsOpen: true, Open: "12:00", Close: "00:30"},
			"sunday":    {IsOpen: true, Open: "12:00", Close: "23:00"},
		},
		MenuHighlights: models.MenuHighlights{
			{Name: "Mango sago pomelo", DietaryTags: []string{"vegetarian", "gluten-free"}},
			{Name: "Black sesame soup", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
		},
	},
	{
		Name:           "Andes Fire Grill",
		CuisineTypes:   models.JSONBStringArray{"Exotic Fusion", "Fine Dining"},
		Latitude:       22.2850, Longitude: 114.1500,
		District:       "Sai Ying Pun",
		PriceRange:     4,
		Rating:         4.5,
		NegativeScore:  0.08,
		ReviewCount:    218,
		Atmosphere:     models.JSONBStringArray{"adventurous", "vibrant", "intimate"},
		OperatingHours: weekdayHours,
		MenuHighlights: models.MenuHighlights{
			{Name: "Charred octopus with aji amarillo", DietaryTags: []string{"gluten-free"}},
			{Name: "Smoked cauliflower steak", DietaryTags: []string{"vegetarian", "vegan", "gluten-free"}},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New(string(config.GetEnvironment()))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", "error", err)
	}

	catalog := service.NewCatalogService(db)
	ctx := context.Background()

	seeded := 0
	for i := range seedRestaurants {
		restaurant := seedRestaurants[i]

		var count int64
		if err := db.Model(&models.Restaurant{}).Where("name = ?", restaurant.Name).Count(&count).Error; err != nil {
			zlog.Fatal("failed to check for existing restaurant", "name", restaurant.Name, "error", err)
		}
		if count > 0 {
			zlog.Info("restaurant already seeded, skipping", "name", restaurant.Name)
			continue
		}

		if _, err := catalog.CreateRestaurant(ctx, &restaurant); err != nil {
			zlog.Fatal("failed to seed restaurant", "name", restaurant.Name, "error", err)
		}
		zlog.Info("seeded restaurant", "name", restaurant.Name, "district", restaurant.District)
		seeded++
	}

	zlog.Info("restaurant seeding complete", "seeded", seeded, "total", len(seedRestaurants))
}
