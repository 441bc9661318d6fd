package mcpguide

import (
	"github.com/ziadkadry99/deepdive/internal/chart"
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/session"
)

type categoryRow struct {
	Category, UseCases, Benefits string
}

func (r categoryRow) Cells() []string { return []string{r.Category, r.UseCases, r.Benefits} }

var categories = []categoryRow{
	{"E-commerce", "Product recommendations, inventory management, order processing", "Personalized experiences, automated operations"},
	{"Healthcare", "Patient data analysis, treatment recommendations, appointment scheduling", "Improved patient outcomes, reduced errors"},
	{"Finance", "Fraud detection, risk assessment, automated trading", "Enhanced security, automated compliance"},
	{"Education", "Personalized learning, content generation, assessment", "Adaptive learning, efficient content creation"},
	{"Manufacturing", "Quality control, predictive maintenance, supply chain optimization", "Predictive insights, optimized operations"},
	{"Customer Service", "Chatbots, ticket routing, knowledge base queries", "24/7 support, consistent responses"},
	{"Content Management", "Content generation, SEO optimization, social media management", "Automated content, improved engagement"},
	{"Data Analytics", "Business intelligence, predictive analytics, reporting", "Real-time insights, data-driven decisions"},
}

type storyRow struct {
	Company, Implementation, Results, Benefits string
}

func (r storyRow) Cells() []string { return []string{r.Company, r.Implementation, r.Results, r.Benefits} }

var successStories = []storyRow{
	{"TechCorp E-commerce", "Product recommendation system", "35% increase in sales, 50% reduction in support tickets", "Standardized AI integration, easy maintenance"},
	{"HealthAI Systems", "Medical diagnosis assistant", "40% faster diagnosis, 25% reduction in errors", "Secure patient data handling, compliance"},
	{"FinanceFlow Inc", "Fraud detection system", "60% reduction in fraud, 30% cost savings", "Real-time fraud detection, scalability"},
	{"EduTech Solutions", "Personalized learning platform", "45% improvement in learning outcomes", "Adaptive learning, personalized content"},
	{"ManufacturingAI", "Predictive maintenance system", "50% reduction in downtime, 20% cost savings", "Predictive insights, automated alerts"},
}

var futureApplications = []string{
	"**Smart Cities**: Traffic optimization, energy management, public safety",
	"**Autonomous Vehicles**: Real-time decision making, route optimization",
	"**Space Exploration**: Mission planning, data analysis, autonomous operations",
	"**Climate Change**: Environmental monitoring, carbon footprint tracking",
	"**Virtual Reality**: Immersive AI assistants, virtual world interactions",
	"**Quantum Computing**: Quantum algorithm optimization, error correction",
	"**Blockchain**: Smart contract automation, DeFi applications",
	"**IoT**: Device management, data processing, predictive maintenance",
}

// fanInOut draws one source fanning out to three steps that converge on a
// single sink.
func fanInOut(title, source string, steps [3]string, sink string) chart.Figure {
	d := chart.Diagram{
		Title:    title,
		Height:   300,
		FontSize: 10,
		Nodes: []chart.Node{
			{X: 0, Y: 0, Label: source, Color: chart.Indigo},
			{X: 2, Y: 1, Label: steps[0], Color: chart.Purple},
			{X: 2, Y: 0, Label: steps[1], Color: chart.Purple},
			{X: 2, Y: -1, Label: steps[2], Color: chart.Purple},
			{X: 4, Y: 0, Label: sink, Color: chart.Green},
		},
	}
	for y := 1.0; y >= -1; y-- {
		d.Arrows = append(d.Arrows, chart.Arrow{FromX: 0, FromY: 0, ToX: 2, ToY: y})
	}
	for y := 1.0; y >= -1; y-- {
		d.Arrows = append(d.Arrows, chart.Arrow{FromX: 2, FromY: y, ToX: 4, ToY: 0})
	}
	return d.Figure()
}

func useCase(heading string, tools, capabilities []string, fig chart.Figure) []content.Block {
	return []content.Block{
		h4(heading),
		halves(
			[]content.Block{
				md("**MCP Tools:**"), bullets(tools...),
				md("**AI Capabilities:**"), bullets(capabilities...),
			},
			[]content.Block{content.Chart{Figure: fig}},
		),
	}
}

const ecommerceServer = `// E-commerce MCP Server
import { McpServer } from "@modelcontextprotocol/sdk/server/mcp.js";

const server = new McpServer({
  name: "ecommerce-server",
  version: "1.0.0"
});

// Product search tool
server.registerTool("product_search", {
  description: "Search for products using natural language",
  inputSchema: {
    type: "object",
    properties: {
      query: {
        type: "string",
        description: "Natural language product search query"
      },
      category: {
        type: "string",
        description: "Product category filter"
      },
      price_range: {
        type: "object",
        properties: {
          min: { type: "number" },
          max: { type: "number" }
        }
      }
    },
    required: ["query"]
  }
}, async (params) => {
  const { query, category, price_range } = params;

  // Use AI to understand the search query
  const searchTerms = await analyzeSearchQuery(query);

  // Search products in database
  const products = await searchProducts({
    terms: searchTerms,
    category,
    price_range
  });

  // Generate AI-powered recommendations
  const recommendations = await generateRecommendations(products);

  return {
    content: [
      {
        type: "text",
        text: JSON.stringify({
          products: products.slice(0, 10),
          recommendations,
          total_found: products.length
        })
      }
    ]
  };
});

// Inventory check tool
server.registerTool("inventory_check", {
  description: "Check product availability and stock levels",
  inputSchema: {
    type: "object",
    properties: {
      product_id: {
        type: "string",
        description: "Product identifier"
      },
      quantity: {
        type: "number",
        description: "Required quantity"
      }
    },
    required: ["product_id"]
  }
}, async (params) => {
  const { product_id, quantity = 1 } = params;

  const inventory = await checkInventory(product_id);
  const available = inventory.stock >= quantity;

  return {
    content: [
      {
        type: "text",
        text: JSON.stringify({
          product_id,
          available,
          stock_level: inventory.stock,
          requested_quantity: quantity,
          estimated_restock: inventory.restock_date
        })
      }
    ]
  };
});

// Start the server
server.start();`

func realWorld(*session.State) content.Section {
	blocks := []content.Block{
		h3("🏢 Application Categories"),
		content.NewTable([]string{"Category", "Use Cases", "MCP Benefits"}, categories),
		h3("💼 Detailed Use Cases"),
	}

	blocks = append(blocks, useCase("🛒 E-commerce Platform",
		[]string{
			"`product_search`: Find products by description",
			"`inventory_check`: Check product availability",
			"`price_optimization`: Suggest optimal pricing",
			"`recommendation_engine`: Generate product recommendations",
			"`order_processing`: Handle order creation and updates",
			"`customer_analysis`: Analyze customer behavior",
		},
		[]string{
			"Natural language product search",
			"Personalized recommendations",
			"Dynamic pricing optimization",
			"Automated customer support",
			"Fraud detection",
			"Inventory forecasting",
		},
		fanInOut("E-commerce MCP Flow", "Customer Query",
			[3]string{"Product Search", "Recommendation", "Price Check"}, "Order Processing"),
	)...)

	blocks = append(blocks, useCase("🏥 Healthcare System",
		[]string{
			"`patient_lookup`: Find patient records",
			"`symptom_analysis`: Analyze symptoms and suggest diagnoses",
			"`treatment_recommendation`: Suggest treatment options",
			"`appointment_scheduling`: Schedule and manage appointments",
			"`medication_check`: Check drug interactions",
			"`lab_result_analysis`: Analyze lab results",
		},
		[]string{
			"Medical image analysis",
			"Symptom pattern recognition",
			"Treatment outcome prediction",
			"Drug interaction detection",
			"Automated documentation",
			"Clinical decision support",
		},
		fanInOut("Healthcare MCP Flow", "Patient Input",
			[3]string{"Symptom Analysis", "Record Lookup", "Lab Analysis"}, "Treatment Plan"),
	)...)

	blocks = append(blocks,
		h3("🛠️ Implementation Examples"),
		h4("E-commerce MCP Server"),
		js("", ecommerceServer),

		h3("🏆 Success Stories"),
		content.NewTable([]string{"Company", "Implementation", "Results", "MCP Benefits"}, successStories),

		h3("🚀 Future Applications"),
		bullets(futureApplications...),
	)

	return content.Section{Header: "🌍 Real-World Applications", Blocks: blocks}
}
