package rewards

// Tabela estática de frases motivacionais por ação
var motivationalQuotes = map[string][]Quote{
	ActionTaskCreated: {
		{
			Quote:    "Every task you create is a step towards your dreams. You're building your future, one task at a time! 🌟",
			Author:   "Your Future Self",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "motivation",
		},
		{
			Quote:    "Small steps, big impact. You're a master of consistency and persistence! 💪",
			Author:   "The Universe",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "consistency",
		},
		{
			Quote:    "Your dedication to planning is inspiring. You're creating the life you deserve! ✨",
			Author:   "Your Inner Guide",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "dedication",
		},
		{
			Quote:    "Every task is an opportunity to grow. You're becoming unstoppable! 🚀",
			Author:   "Growth Mindset",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "growth",
		},
		{
			Quote:    "You're not just creating tasks, you're creating miracles. Keep going! 🌈",
			Author:   "Your Potential",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "miracles",
		},
	},
	ActionTaskCompleted: {
		{
			Quote:    "BOOM! Another task conquered! You're absolutely crushing it today! 🎉",
			Author:   "Your Success",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "celebration",
		},
		{
			Quote:    "You're a productivity powerhouse! Every completion makes you stronger! 💪",
			Author:   "Your Power",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "power",
		},
		{
			Quote:    "Mission accomplished! You're building unstoppable momentum! 🚀",
			Author:   "Your Momentum",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "momentum",
		},
		{
			Quote:    "You're not just completing tasks, you're completing dreams! ✨",
			Author:   "Your Dreams",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "dreams",
		},
		{
			Quote:    "Another victory! You're becoming the person you always wanted to be! 🌟",
			Author:   "Your Future",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "victory",
		},
	},
	ActionLogin: {
		{
			Quote:    "Welcome back, champion! Ready to conquer another amazing day? 🌅",
			Author:   "Your Journey",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "welcome",
		},
		{
			Quote:    "You're back! Your consistency is absolutely inspiring! 💫",
			Author:   "Your Consistency",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "consistency",
		},
		{
			Quote:    "Great to see you again! You're building something incredible! 🏗️",
			Author:   "Your Building",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "building",
		},
		{
			Quote:    "You're here! That's the first step to another productive day! 👟",
			Author:   "Your Steps",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "steps",
		},
		{
			Quote:    "Welcome back, warrior! Your dedication is changing your life! ⚔️",
			Author:   "Your Warrior",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "warrior",
		},
	},
	// A ordem importa: StreakMessage e MilestoneMessage indexam por patamar
	ActionStreak: {
		{
			Quote:    "🔥 3-day streak! You're on fire! Keep this momentum going!",
			Author:   "Your Fire",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "fire",
		},
		{
			Quote:    "🌟 7-day streak! You're absolutely unstoppable!",
			Author:   "Your Unstoppable",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "unstoppable",
		},
		{
			Quote:    "💎 30-day streak! You're a diamond in the making!",
			Author:   "Your Diamond",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "diamond",
		},
		{
			Quote:    "👑 100-day streak! You're royalty of consistency!",
			Author:   "Your Royalty",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "royalty",
		},
	},
	ActionMilestone: {
		{
			Quote:    "🎯 10 tasks completed! You're hitting targets like a pro!",
			Author:   "Your Target",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "target",
		},
		{
			Quote:    "🏆 50 tasks completed! You're a productivity champion!",
			Author:   "Your Champion",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "champion",
		},
		{
			Quote:    "💎 100 tasks completed! You're absolutely legendary!",
			Author:   "Your Legend",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "legend",
		},
		{
			Quote:    "👑 500 tasks completed! You're the master of your destiny!",
			Author:   "Your Mastery",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "mastery",
		},
	},
	ActionStatusChange: {
		{
			Quote:    "🌟 Status updated! You're taking control of your tasks!",
			Author:   "Your Control",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "control",
		},
		{
			Quote:    "✨ Every change is progress! You're moving forward!",
			Author:   "Your Progress",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "progress",
		},
		{
			Quote:    "💫 Adapting and evolving! You're becoming unstoppable!",
			Author:   "Your Evolution",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "evolution",
		},
		{
			Quote:    "🎯 Flexibility is your superpower! Keep adapting!",
			Author:   "Your Flexibility",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "flexibility",
		},
		{
			Quote:    "🚀 Every adjustment brings you closer to success!",
			Author:   "Your Success",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "success",
		},
	},
	ActionTaskReset: {
		{
			Quote:    "🔄 Fresh start! You're giving yourself another chance!",
			Author:   "Your Second Chance",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "fresh_start",
		},
		{
			Quote:    "🌱 New beginnings! Every reset is growth!",
			Author:   "Your Growth",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category: "growth",
		},
		{
			Quote:    "⭐ You're not giving up, you're starting over!",
			Author:   "Your Persistence",
			Image:    "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Category: "persistence",
		},
		{
			Quote:    "💪 Resilience is your strength! Keep going!",
			Author:   "Your Resilience",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category: "resilience",
		},
		{
			Quote:    "🎯 Every reset is a step toward mastery!",
			Author:   "Your Mastery",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Category: "mastery",
		},
	},
}
