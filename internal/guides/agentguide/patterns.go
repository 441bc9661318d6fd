package agentguide

import (
	"github.com/ziadkadry99/deepdive/internal/content"
	"github.com/ziadkadry99/deepdive/internal/session"
)

const reactAgent = `class ReACTAgent:
    def __init__(self, llm, tools, memory):
        self.llm = llm
        self.tools = {tool.name: tool for tool in tools}
        self.memory = memory
        self.max_iterations = 10

    def run(self, query):
        thoughts = []
        actions = []
        observations = []

        for i in range(self.max_iterations):
            # Reason: Generate thought
            thought = self.reason(query, thoughts, actions, observations)
            thoughts.append(thought)

            # Check if we should act
            if self.should_act(thought):
                # Act: Choose and execute tool
                action = self.act(thought, query)
                actions.append(action)

                # Observe: Get result
                observation = self.observe(action)
                observations.append(observation)

                # Check if we're done
                if self.is_final_answer(observation):
                    break
            else:
                # We have a final answer
                break

        return self.generate_final_answer(thoughts, actions, observations)`

const toolSystem = `class Tool(ABC):
    def __init__(self, name: str, description: str):
        self.name = name
        self.description = description

    @abstractmethod
    def execute(self, parameters: Dict[str, Any]) -> Any:
        pass

    @abstractmethod
    def get_schema(self) -> Dict[str, Any]:
        pass

class CalculatorTool(Tool):
    def __init__(self):
        super().__init__("calculator", "Performs mathematical calculations")

    def execute(self, parameters: Dict[str, Any]) -> Any:
        operation = parameters.get('operation')
        a = parameters.get('a')
        b = parameters.get('b')

        if operation == 'add':
            return a + b
        elif operation == 'subtract':
            return a - b
        elif operation == 'multiply':
            return a * b
        elif operation == 'divide':
            return a / b if b != 0 else "Error: Division by zero"
        else:
            return "Error: Unknown operation"`

const memorySystem = `class ShortTermMemory:
    def __init__(self, max_size: int = 100):
        self.memory = []
        self.max_size = max_size

    def add(self, item: Any):
        self.memory.append(item)
        if len(self.memory) > self.max_size:
            self.memory.pop(0)  # Remove oldest item

    def get_recent(self, n: int = 10) -> List[Any]:
        return self.memory[-n:]

class LongTermMemory:
    def __init__(self, vector_store):
        self.vector_store = vector_store

    def store(self, content: str, metadata: Dict[str, Any] = None):
        embedding = self.vector_store.embed(content)
        self.vector_store.add(embedding, content, metadata or {})

    def retrieve(self, query: str, top_k: int = 5) -> List[Dict[str, Any]]:
        query_embedding = self.vector_store.embed(query)
        results = self.vector_store.search(query_embedding, top_k)
        return results`

const reactIntro = `**ReACT (Reason + Act) Pattern:**

The ReACT pattern is one of the most powerful agent patterns where the agent:
1. **Reasons** about what to do
2. **Acts** by calling a tool
3. **Observes** the result
4. **Repeats** until the task is complete
`

func implementation(*session.State) content.Section {
	return content.Section{
		Header: "⚙️ Implementation Patterns",
		Blocks: []content.Block{
			step("ReACT Pattern Implementation"),
			md(reactIntro),
			content.Code{Lang: "python", Caption: "Implementation Example:", Source: reactAgent},

			step("Tool System Implementation"),
			md("**Tools give agents the ability to take actions:**"),
			bullets(
				"Perform calculations",
				"Query databases",
				"Call APIs",
				"Execute functions",
			),
			python(toolSystem),

			step("Memory System Implementation"),
			halves(
				[]content.Block{md("**Short-term Memory:**"), bullets(
					"Recent interactions",
					"Current context",
					"Temporary storage",
					"Fast access",
				)},
				[]content.Block{md("**Long-term Memory:**"), bullets(
					"Historical data",
					"Learned patterns",
					"Persistent storage",
					"Semantic search",
				)},
			),
			python(memorySystem),
		},
	}
}

const hierarchicalPlanner = `class HierarchicalPlanner:
    def __init__(self, llm):
        self.llm = llm
        self.plan_hierarchy = {}

    def create_plan(self, goal: str, context: Dict[str, Any]) -> Dict[str, Any]:
        # High-level plan
        high_level_plan = self.create_high_level_plan(goal, context)

        # Decompose into sub-plans
        sub_plans = []
        for step in high_level_plan["steps"]:
            if step["complexity"] > 0.7:  # Complex step needs decomposition
                sub_plan = self.decompose_step(step, context)
                sub_plans.append(sub_plan)
            else:
                sub_plans.append(step)

        return {
            "goal": goal,
            "high_level_plan": high_level_plan,
            "detailed_plan": sub_plans,
            "estimated_duration": self.estimate_duration(sub_plans)
        }`

const multiModalAgent = `class MultiModalAgent:
    def __init__(self, llm, tools, perception):
        self.llm = llm
        self.tools = tools
        self.perception = perception

    def process_multimodal_input(self, inputs: Dict[str, Any]):
        # Process all modalities
        processed = self.perception.process(inputs)

        # Combine modalities for reasoning
        combined_context = self.combine_modalities(processed)

        # Generate response
        response = self.llm.generate(combined_context)

        return response`

const adaptiveAgent = `class AdaptiveLearningAgent:
    def __init__(self, base_agent, learning_rate=0.1):
        self.base_agent = base_agent
        self.learning_rate = learning_rate
        self.performance_history = []
        self.strategy_weights = {}

    def learn_from_experience(self, experience: Dict[str, Any]):
        # Extract performance metrics
        performance = self.evaluate_performance(experience)
        self.performance_history.append(performance)

        # Update strategy weights
        self.update_strategy_weights(performance)

        # Adapt agent behavior
        self.adapt_agent_behavior()`

func advanced(*session.State) content.Section {
	return content.Section{
		Header: "🚀 Advanced Techniques",
		Blocks: []content.Block{
			step("Planning and Goal Decomposition"),
			md("**Hierarchical Planning:**"),
			bullets(
				"Break down complex goals into sub-goals",
				"Create abstract plans at high levels",
				"Refine plans at lower levels",
				"Handle dependencies between tasks",
			),
			python(hierarchicalPlanner),

			step("Multi-Modal Agents"),
			md("**Multi-Modal Perception:**"),
			bullets(
				"Process text, images, audio, video",
				"Combine different modalities",
				"Generate unified understanding",
				"Take appropriate actions",
			),
			python(multiModalAgent),

			step("Adaptive Learning"),
			md("**Online Learning:**"),
			bullets(
				"Learn from each interaction",
				"Adapt behavior based on performance",
				"Update strategy weights",
				"Improve over time",
			),
			python(adaptiveAgent),
		},
	}
}
