package export

import (
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/emrekoca/mealweek-server/internal/models"
)

// Display names for the grid, already ASCII-safe.
var dayNames = map[string]string{
	"monday":    "Pazartesi",
	"tuesday":   "Sali",
	"wednesday": "Carsamba",
	"thursday":  "Persembe",
	"friday":    "Cuma",
	"saturday":  "Cumartesi",
	"sunday":    "Pazar",
}

var slotNames = map[string]string{
	models.MealTypeBreakfast: "Kahvalti",
	models.MealTypeLunch:     "Ogle",
	models.MealTypeDinner:    "Aksam",
}

// RecipeLookup resolves the recipes attached to a meal id. The first match
// is the one rendered into the shopping list.
type RecipeLookup func(mealID string) []models.Recipe

// RenderPlan writes the weekly plan as a PDF: a 7x4 grid of meal names, a
// shopping list grouped by day, slot and meal, and a generation-timestamp
// footer.
func RenderPlan(w io.Writer, plan models.WeekPlan, recipesFor RecipeLookup, now time.Time) error {
	plan.Normalize()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Haftalik Yemek Plani", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	renderGrid(pdf, plan)
	pdf.Ln(8)
	renderShoppingList(pdf, plan, recipesFor)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, "Olusturulma tarihi: "+now.Format("02.01.2006 15:04"), "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func renderGrid(pdf *gofpdf.Fpdf, plan models.WeekPlan) {
	const dayColWidth = 34.0
	const slotColWidth = 52.0
	const rowHeight = 9.0

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(dayColWidth, rowHeight, "Gun", "1", 0, "C", true, 0, "")
	for _, slotType := range models.SlotTypes {
		pdf.CellFormat(slotColWidth, rowHeight, slotNames[slotType], "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 8)
	for _, day := range models.Days {
		pdf.CellFormat(dayColWidth, rowHeight, dayNames[day], "1", 0, "C", false, 0, "")
		dayPlan := plan.Day(day)
		for _, slotType := range models.SlotTypes {
			pdf.CellFormat(slotColWidth, rowHeight, slotText(*dayPlan.Slot(slotType)), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}
}

func slotText(meals []models.Meal) string {
	if len(meals) == 0 {
		return "-"
	}
	text := ""
	for i, meal := range meals {
		if i > 0 {
			text += ", "
		}
		text += Transliterate(meal.Name)
	}
	return text
}

func renderShoppingList(pdf *gofpdf.Fpdf, plan models.WeekPlan, recipesFor RecipeLookup) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Alisveris Listesi", "", 1, "L", false, 0, "")

	for _, day := range models.Days {
		dayPlan := plan.Day(day)
		wroteDay := false

		for _, slotType := range models.SlotTypes {
			for _, meal := range *dayPlan.Slot(slotType) {
				var recipes []models.Recipe
				if recipesFor != nil {
					recipes = recipesFor(meal.ID)
				}
				if len(recipes) == 0 || len(recipes[0].Ingredients) == 0 {
					continue
				}

				if !wroteDay {
					pdf.SetFont("Helvetica", "B", 10)
					pdf.CellFormat(0, 7, dayNames[day], "", 1, "L", false, 0, "")
					wroteDay = true
				}

				pdf.SetFont("Helvetica", "B", 8)
				pdf.CellFormat(0, 5, "  "+slotNames[slotType]+" - "+Transliterate(meal.Name), "", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 8)
				for _, ing := range recipes[0].Ingredients {
					pdf.CellFormat(0, 4, "    - "+IngredientLine(ing), "", 1, "L", false, 0, "")
				}
			}
		}
	}
}

// IngredientLine formats a shopping list entry: "name (amount unit)" for
// structured ingredients, the raw string otherwise. A fully empty
// ingredient renders as an empty line, not "(0 )".
func IngredientLine(ing models.Ingredient) string {
	if !ing.Structured() {
		return asciiReplacer.Replace(ing.Raw)
	}
	if ing.Name == "" && ing.Amount == 0 && ing.Unit == "" {
		return ""
	}
	amount := strconv.FormatFloat(ing.Amount, 'f', -1, 64)
	return asciiReplacer.Replace(ing.Name) + " (" + amount + " " + asciiReplacer.Replace(ing.Unit) + ")"
}
