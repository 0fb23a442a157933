package database

import (
	"log"

	"apartment-portal/internal/models"
)

// SeedApartments inserts the sample fixture set when the table is empty.
// Existing data is never touched.
func (gdb *GormDB) SeedApartments() error {
	count, err := gdb.CountApartments()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Seed skipped: %d apartments already present", count)
		return nil
	}

	fixtures := seedApartments()
	for i := range fixtures {
		if err := gdb.CreateApartment(&fixtures[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d apartments", len(fixtures))
	return nil
}

func seedApartments() []models.Apartment {
	return []models.Apartment{
		{
			UnitNumber:  "A-101",
			Name:        "Luxury Garden Apartment",
			Project:     "O West",
			Description: "Stunning ground floor apartment with a private garden. Features modern finishes, spacious living areas, and premium amenities. Located in the heart of O West with easy access to all facilities.",
			Price:       4500000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        180,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
				"https://images.unsplash.com/photo-1502672260066-6bc35f0f1edb?w=800",
			},
		},
		{
			UnitNumber:  "B-205",
			Name:        "Panoramic View Penthouse",
			Project:     "New Giza",
			Description: "Exclusive penthouse with breathtaking panoramic views. Featuring high-end finishes, spacious terraces, and state-of-the-art appliances. Perfect for luxury living.",
			Price:       8750000,
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        280,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800",
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
			},
		},
		{
			UnitNumber:  "C-304",
			Name:        "Modern Studio Apartment",
			Project:     "Il Bosco",
			Description: "Cozy studio apartment with contemporary design. Ideal for young professionals or couples. Includes smart home features and energy-efficient systems.",
			Price:       1850000,
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        65,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1502672023488-70e25813eb80?w=800",
			},
		},
		{
			UnitNumber:  "D-102",
			Name:        "Family Duplex",
			Project:     "O West",
			Description: "Spacious duplex perfect for families. Two floors of comfortable living with private entrance. Includes maid room and large kitchen.",
			Price:       6200000,
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        240,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
				"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
			},
		},
		{
			UnitNumber:  "E-410",
			Name:        "Elegant Two Bedroom",
			Project:     "City Gate",
			Description: "Well-designed two-bedroom apartment with elegant finishes. Features balcony with city views, modern kitchen, and quality fixtures throughout.",
			Price:       3100000,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        135,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
			},
		},
		{
			UnitNumber:  "F-501",
			Name:        "Compact Smart Home",
			Project:     "Villette",
			Description: "Smart home technology integrated throughout. Compact yet efficient design perfect for modern living. Energy-efficient and eco-friendly.",
			Price:       2450000,
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        95,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
			},
		},
		{
			UnitNumber:  "G-203",
			Name:        "Spacious Family Home",
			Project:     "New Giza",
			Description: "Large family apartment with open-plan living. Multiple balconies, storage space, and premium finishes. Located in family-friendly community.",
			Price:       5500000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        200,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
				"https://images.unsplash.com/photo-1600573472591-ee6b68d14c68?w=800",
			},
		},
		{
			UnitNumber:  "H-105",
			Name:        "Ground Floor with Terrace",
			Project:     "Il Bosco",
			Description: "Charming ground floor apartment with spacious terrace. Perfect for outdoor entertaining. Features designer kitchen and spa-like bathrooms.",
			Price:       4900000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        170,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=800",
			},
		},
		{
			UnitNumber:  "I-308",
			Name:        "Contemporary Loft",
			Project:     "City Gate",
			Description: "Modern loft-style apartment with high ceilings and industrial charm. Open concept design with exposed concrete and modern fixtures.",
			Price:       3800000,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        145,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=800",
			},
		},
		{
			UnitNumber:  "J-401",
			Name:        "Luxury Three Bedroom",
			Project:     "O West",
			Description: "Premium three-bedroom apartment with luxury finishes throughout. Features smart home system, premium appliances, and designer bathrooms.",
			Price:       5200000,
			Bedrooms:    3,
			Bathrooms:   3,
			Area:        190,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800",
				"https://images.unsplash.com/photo-1600607687644-c7171b42498b?w=800",
			},
		},
		{
			UnitNumber:  "K-202",
			Name:        "Cozy One Bedroom",
			Project:     "Villette",
			Description: "Perfect starter home with cozy layout. Includes modern kitchen, comfortable bedroom, and functional bathroom. Great for singles or couples.",
			Price:       2100000,
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        75,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1556020685-ae41abfc9365?w=800",
			},
		},
		{
			UnitNumber:  "L-506",
			Name:        "Executive Suite",
			Project:     "New Giza",
			Description: "Luxurious executive suite with premium finishes. Features walk-in closets, marble bathrooms, and gourmet kitchen. Stunning views included.",
			Price:       7800000,
			Bedrooms:    4,
			Bathrooms:   4,
			Area:        265,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=800",
				"https://images.unsplash.com/photo-1600563438938-a9a27216b4f5?w=800",
			},
		},
		{
			UnitNumber:  "M-103",
			Name:        "Garden Duplex",
			Project:     "Il Bosco",
			Description: "Unique duplex with private garden access. Two-story living with separate living and sleeping areas. Perfect for families who love outdoor space.",
			Price:       6800000,
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        250,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600566752355-35792bedcfea?w=800",
			},
		},
		{
			UnitNumber:  "N-207",
			Name:        "Mid-Floor Comfort",
			Project:     "City Gate",
			Description: "Comfortable mid-floor apartment with balanced layout. Features modern amenities, good natural light, and efficient use of space.",
			Price:       3400000,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        125,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=800",
			},
		},
		{
			UnitNumber:  "O-601",
			Name:        "Top Floor Retreat",
			Project:     "O West",
			Description: "Private top floor apartment with no neighbors above. Quiet and peaceful with excellent natural light. Premium finishes and smart layout.",
			Price:       5800000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        195,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
			},
		},
		{
			UnitNumber:  "P-304",
			Name:        "Modern Two Bedroom",
			Project:     "Villette",
			Description: "Contemporary two-bedroom with sleek design. Features European kitchen, modern bathrooms, and quality finishes. Ready to move in.",
			Price:       2850000,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        110,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600566752229-250ed79470d1?w=800",
			},
		},
		{
			UnitNumber:  "Q-402",
			Name:        "Premium Corner Unit",
			Project:     "New Giza",
			Description: "Corner unit with extra windows and natural light. Spacious layout with premium fixtures. Excellent ventilation and views from multiple sides.",
			Price:       4700000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        175,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600573472550-8090b5e0745e?w=800",
			},
		},
		{
			UnitNumber:  "R-108",
			Name:        "Family Ground Floor",
			Project:     "Il Bosco",
			Description: "Practical ground floor apartment for families. Easy access, no stairs needed. Includes storage space and functional layout.",
			Price:       4200000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        160,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
			},
		},
		{
			UnitNumber:  "S-505",
			Name:        "High Floor Studio",
			Project:     "City Gate",
			Description: "Stylish studio on high floor with great views. Efficient design maximizes space. Perfect for young professionals.",
			Price:       1650000,
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        55,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
			},
		},
		{
			UnitNumber:  "T-201",
			Name:        "Accessible Living",
			Project:     "O West",
			Description: "Thoughtfully designed for easy accessibility. Wide doorways, open spaces, and practical layout. Comfortable living for everyone.",
			Price:       3600000,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        140,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600585154084-4e5fe7c39198?w=800",
			},
		},
		{
			UnitNumber:  "U-703",
			Name:        "Penthouse Living",
			Project:     "New Giza",
			Description: "Spectacular penthouse with private rooftop. Ultimate luxury with panoramic views, high-end finishes, and exclusive amenities.",
			Price:       9500000,
			Bedrooms:    4,
			Bathrooms:   4,
			Area:        300,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600047509358-9dc75507daeb?w=800",
				"https://images.unsplash.com/photo-1600607687644-aac4c3eac7f4?w=800",
			},
		},
		{
			UnitNumber:  "V-106",
			Name:        "Garden View Apartment",
			Project:     "Villette",
			Description: "Serene apartment overlooking community gardens. Peaceful setting with nature views. Modern finishes and comfortable layout.",
			Price:       2650000,
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        100,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600566753151-384129cf4e3e?w=800",
			},
		},
		{
			UnitNumber:  "W-405",
			Name:        "Smart Family Home",
			Project:     "Il Bosco",
			Description: "Intelligent home design with smart features. Family-friendly layout with ample storage. Energy-efficient and eco-conscious.",
			Price:       5100000,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        185,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600585152220-90363fe7e115?w=800",
			},
		},
		{
			UnitNumber:  "X-302",
			Name:        "Urban Living Space",
			Project:     "City Gate",
			Description: "Perfect for urban lifestyle with modern conveniences. Close to amenities, well-designed spaces, and contemporary finishes.",
			Price:       3200000,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        120,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600573472591-ee6b68d14c68?w=800",
			},
		},
		{
			UnitNumber:  "Y-604",
			Name:        "Luxury High Rise",
			Project:     "O West",
			Description: "High-rise living at its finest. Spectacular views, premium finishes, and exclusive building amenities. Resort-style living.",
			Price:       6500000,
			Bedrooms:    3,
			Bathrooms:   3,
			Area:        210,
			Images: models.URLList{
				"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=800",
				"https://images.unsplash.com/photo-1600607688969-a5bfcd646154?w=800",
			},
		},
	}
}
