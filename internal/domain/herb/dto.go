package herb

type SubmitHerbInput struct {
	HerbName          string `form:"herb_name" binding:"required"`
	GrowthMonth       string `form:"growth_month" binding:"required"`
	FertilizerUsed    string `form:"fertilizer_used" binding:"required"`
	FertilizerDetails string `form:"fertilizer_details"`
	HarvestingMethod  string `form:"harvesting_method" binding:"required"`
	Location          string `form:"location" binding:"required"`
	Latitude          string `form:"latitude"`
	Longitude         string `form:"longitude"`
}

// UsesFertilizer reports the form's yes/no answer.
func (in SubmitHerbInput) UsesFertilizer() bool {
	return in.FertilizerUsed == "yes"
}
