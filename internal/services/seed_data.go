package services

import "katalog/internal/models"

// seedProducts is the embedded seed catalog used by SeedService.
var seedProducts = []models.CreateProductInput{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Price:       75,
		Description: "Introducing the softest crew neck in the collection. Relaxed fit, double-dyed cotton.",
		Stock:       7,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Price:       200,
		Description: "Quilted shirt jacket with weatherproof outer shell and fleece lining.",
		Stock:       5,
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		Price:       130,
		Description: "Modern fit bomber with invisible zip pockets and matte finish hardware.",
		Stock:       10,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Men's Turbine Long Sleeve Tee",
		Price:       45,
		Description: "Made from cotton jersey with a silicone-washed finish for a broken-in feel.",
		Stock:       50,
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Price:       225,
		Description: "Cropped silhouette with fully seam-sealed exterior and drawcord hem.",
		Stock:       85,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "women",
		Tags:        []string{"jacket", "women"},
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Half Zip Cropped Hoodie",
		Price:       130,
		Description: "Soft French terry hoodie with a cropped, slightly oversized fit.",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Crew Neck Sweatshirt",
		Price:       75,
		Description: "Crew neck sweatshirt in double-dyed cotton with a relaxed fit.",
		Stock:       0,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "women",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740140-00-A_0_2000.jpg", "1740140-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cybertruck Long Sleeve Tee",
		Price:       30,
		Description: "100% combed cotton long sleeve tee with graphic print.",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt", "kids"},
		Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
	},
	{
		Title:       "Kids Checkered Tee",
		Price:       30,
		Description: "Short sleeve tee in soft peruvian cotton with checkered sleeve print.",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt", "kids"},
		Images:      []string{"8529198-00-A_0_2000.jpg", "8529198-00-A_1.jpg"},
	},
	{
		Title:       "3D Small Wordmark Tee",
		Price:       35,
		Description: "Unisex tee with 3D silicone-printed wordmark on the chest.",
		Stock:       15,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "unisex",
		Tags:        []string{"shirt"},
		Images:      []string{"8764734-00-A_0_2000.jpg", "8764734-00-A_1.jpg"},
	},
}
