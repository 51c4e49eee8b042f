package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/guiluca/dineboard"
	"github.com/guiluca/dineboard/date"
	"github.com/guiluca/dineboard/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.
			The user runs a restaurant and keeps track of the ingredient stock, the cost of dishes and
			the orders of each day.

			Learn about the expert's skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Amounts of money are in the kitchen's currency, do not convert them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStorekeeper returns the expert in charge of the ingredient stock of k.
func NewStorekeeper(k *dineboard.Kitchen) *Expert {
	lib := []Function{StockTool(k)}
	return &Expert{
		Name: "Storekeeper",
		Description: `This is the Storekeeper. The Storekeeper knows what is left in stock, what it is worth
		and which ingredients must be reordered.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the storekeeper of a restaurant. Use the Tools to read the stock levels and
				the stock alerts. An ingredient is low when its stock is at or below 20% of what was bought.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewAccountant returns the expert in charge of the dish costs of k and of the ledger.
func NewAccountant(k *dineboard.Kitchen, ledger *dineboard.LedgerFile) *Expert {
	lib := []Function{DishCostsTool(k), OrdersOnTool(ledger)}
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. The Accountant knows what each dish of the menu costs to prepare
		and which orders were recorded on a given day.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the accountant of a restaurant. Use the Tools to compute the cost of the dishes
				and to read the orders recorded in the ledger. Dates are written YYYY-MM-DD.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewBuyer returns an expert grounded on Google Search to find suppliers and market prices.
func NewBuyer() *Expert {
	return &Expert{
		Name: "Buyer",
		Description: `This is the Buyer. The Buyer knows the market prices of ingredients and where to
		buy them. Ask the Buyer whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a buyer for a restaurant. You leverage Google Search to find the current
				prices of ingredients and suppliers, and to ground your assertions.
			`}}},
		},
	}
}

// StockTool lists the stock of k with its alerts.
func StockTool(k *dineboard.Kitchen) *Func {
	const name = "Stock"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Stock returns the kitchen dashboard: inventory value, stock alerts, the stock level of every ingredient and the cost of every dish.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown document with the metrics, the alerts and the inventory table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.RenderDashboard(renderer.NewDashboard(k)))
		},
	}
}

// DishCostsTool prices one dish or the whole menu of k.
func DishCostsTool(k *dineboard.Kitchen) *Func {
	const name = "DishCosts"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `DishCosts returns the cost of one serving of the dishes of the menu, with their recipe.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"dish": {
						Type:        genai.TypeString,
						Description: "The name of a dish. All dishes are returned when omitted.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the dishes with their cost per serving.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			costs := k.MenuCosts()
			if arg, ok := args["dish"]; ok {
				dish, ok := arg.(string)
				if !ok {
					return errorResponse(id, name, fmt.Errorf("argument 'dish' is not a string as expected but %T", arg))
				}
				recipe, err := k.Menu.Get(dish)
				if err != nil {
					return errorResponse(id, name, err)
				}
				cost, err := k.CostPerServing(dish)
				costs = []dineboard.DishCost{{Dish: dish, Recipe: recipe, Cost: cost, Err: err}}
			}
			return outputResponse(id, name, renderer.MenuMarkdown(costs))
		},
	}
}

// OrdersOnTool finds the orders of a day in the ledger.
func OrdersOnTool(ledger *dineboard.LedgerFile) *Func {
	const name = "OrdersOn"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `OrdersOn returns the orders recorded in the ledger on a given day, with their cost and the day total.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The day, formatted as YYYY-MM-DD. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the orders of that day.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day := date.Today().String()
			if arg, ok := args["date"]; ok {
				s, ok := arg.(string)
				if !ok {
					return errorResponse(id, name, fmt.Errorf("argument 'date' is not a string as expected but %T", arg))
				}
				day = s
			}
			rows, err := ledger.FindByDate(day)
			if errors.Is(err, dineboard.ErrNotFound) {
				return outputResponse(id, name, "No order has been recorded yet.")
			}
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, renderer.SearchMarkdown(day, rows))
		},
	}
}
