package analysis

import "srtcheck/internal/config"

func literal(expr, suggestion, description string) config.PatternSpec {
	return config.PatternSpec{Name: expr, Kind: config.PatternKindLiteral, Expr: expr, Suggestion: suggestion, Description: description}
}

func regex(expr, suggestion, description string) config.PatternSpec {
	return config.PatternSpec{Name: expr, Kind: config.PatternKindRegex, Expr: expr, Suggestion: suggestion, Description: description}
}

// DefaultSpecs returns the built-in table in evaluation order.
func DefaultSpecs() []config.PatternSpec {
	checkpoint := regex(`check\s*point`, "checkpointer", "Checkpointer component")
	checkpoint.Name = `check\s*point(?!er)`
	checkpoint.NotFollowedBy = "er"

	return []config.PatternSpec{
		// Chinese homophones
		literal("绘画", "会话", "session/conversation context"),
		literal("源数据", "元数据", "metadata"),
		literal("本科", "本课", "this lesson"),
		literal("事例", "示例", "example"),
		literal("中间键", "中间件", "middleware"),
		literal("详细", "消息", "message (context-dependent)"),

		// LangChain ecosystem
		regex(`[Ll]uncheon`, "langchain", "LangChain package"),
		regex(`蓝[犬卷]`, "LangChain", "LangChain framework"),
		regex(`[Ll]antern`, "LangChain", "LangChain framework"),
		regex(`land\s*GRAPH`, "langgraph", "LangGraph package"),
		regex(`LAN\s*GRAPH`, "langgraph", "LangGraph package"),

		regex(`open\s*EI`, "OpenAI", "OpenAI"),
		regex(`open\s*Email`, "OpenAI", "OpenAI"),

		regex(`[Aa]\s*memory\s*[Ss]erver`, "MemorySaver", "Memory component"),
		regex(`amneserver`, "MemorySaver", "Memory component"),
		checkpoint,
		regex(`Sharepoint`, "checkpointer", "Checkpointer component"),

		regex(`wrong\s*time`, "runtime", "runtime"),
		regex(`confict`, "config", "configuration"),
	}
}
