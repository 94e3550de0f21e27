package catalog

// Built-in menu. Categories and cooking times mirror the restaurant's
// reference sheet; prices are in yuan.
var defaultDishes = []Dish{
	{ID: "signature_1", Name: "毛肚", Category: "镇店之宝", Price: 28, Emoji: "🥩", CookingTime: 15000, Description: "新鲜毛肚，七上八下", Spiciness: 2},
	{ID: "signature_2", Name: "鸭肠", Category: "镇店之宝", Price: 25, Emoji: "🦆", CookingTime: 10000, Description: "脆嫩鸭肠，一涮即熟", Spiciness: 1},
	{ID: "signature_3", Name: "黄喉", Category: "镇店之宝", Price: 32, Emoji: "🫀", CookingTime: 20000, Description: "爽脆黄喉，口感独特", Spiciness: 2},
	{ID: "signature_4", Name: "嫩牛肉", Category: "镇店之宝", Price: 45, Emoji: "🥩", CookingTime: 12000, Description: "精选嫩牛肉，入口即化", Spiciness: 3},

	{ID: "meat_1", Name: "肥牛卷", Category: "荤菜", Price: 35, Emoji: "🥩", CookingTime: 25000, Description: "优质肥牛，肉质鲜美", Spiciness: 2},
	{ID: "meat_2", Name: "羊肉卷", Category: "荤菜", Price: 38, Emoji: "🐑", CookingTime: 30000, Description: "新鲜羊肉，无膻味", Spiciness: 3},
	{ID: "meat_3", Name: "午餐肉", Category: "荤菜", Price: 18, Emoji: "🥓", CookingTime: 15000, Description: "经典午餐肉", Spiciness: 1},
	{ID: "meat_4", Name: "虾滑", Category: "荤菜", Price: 28, Emoji: "🦐", CookingTime: 20000, Description: "手打虾滑，Q弹爽口", Spiciness: 1},
	{ID: "meat_5", Name: "鱼豆腐", Category: "荤菜", Price: 15, Emoji: "🐟", CookingTime: 18000, Description: "鲜美鱼豆腐", Spiciness: 1},
	{ID: "meat_6", Name: "腊肠", Category: "荤菜", Price: 22, Emoji: "🌭", CookingTime: 25000, Description: "四川腊肠，香味浓郁", Spiciness: 2},
	{ID: "meat_7", Name: "鸭血", Category: "荤菜", Price: 12, Emoji: "🩸", CookingTime: 30000, Description: "嫩滑鸭血", Spiciness: 2},

	{ID: "veg_1", Name: "土豆片", Category: "素菜", Price: 8, Emoji: "🥔", CookingTime: 35000, Description: "新鲜土豆片", Spiciness: 0},
	{ID: "veg_2", Name: "莲藕片", Category: "素菜", Price: 12, Emoji: "🪷", CookingTime: 40000, Description: "脆嫩莲藕", Spiciness: 0},
	{ID: "veg_3", Name: "冬瓜", Category: "素菜", Price: 10, Emoji: "🥒", CookingTime: 30000, Description: "清甜冬瓜", Spiciness: 0},
	{ID: "veg_4", Name: "白萝卜", Category: "素菜", Price: 8, Emoji: "🥕", CookingTime: 35000, Description: "爽脆白萝卜", Spiciness: 0},
	{ID: "veg_5", Name: "娃娃菜", Category: "素菜", Price: 12, Emoji: "🥬", CookingTime: 25000, Description: "嫩滑娃娃菜", Spiciness: 0},
	{ID: "veg_6", Name: "金针菇", Category: "素菜", Price: 15, Emoji: "🍄", CookingTime: 20000, Description: "鲜美金针菇", Spiciness: 0},
	{ID: "veg_7", Name: "豆皮", Category: "素菜", Price: 10, Emoji: "🫘", CookingTime: 15000, Description: "香滑豆皮", Spiciness: 0},
	{ID: "veg_8", Name: "海带", Category: "素菜", Price: 8, Emoji: "🌿", CookingTime: 25000, Description: "爽脆海带", Spiciness: 0},
	{ID: "veg_9", Name: "木耳", Category: "素菜", Price: 14, Emoji: "🍄", CookingTime: 20000, Description: "脆嫩木耳", Spiciness: 0},

	{ID: "ball_1", Name: "牛肉丸", Category: "丸子类", Price: 22, Emoji: "⚽", CookingTime: 45000, Description: "手工牛肉丸", Spiciness: 1},
	{ID: "ball_2", Name: "鱼丸", Category: "丸子类", Price: 18, Emoji: "🏐", CookingTime: 40000, Description: "Q弹鱼丸", Spiciness: 1},
	{ID: "ball_3", Name: "墨鱼丸", Category: "丸子类", Price: 25, Emoji: "🖤", CookingTime: 42000, Description: "鲜美墨鱼丸", Spiciness: 1},
	{ID: "ball_4", Name: "虾丸", Category: "丸子类", Price: 26, Emoji: "🦐", CookingTime: 38000, Description: "鲜甜虾丸", Spiciness: 1},
	{ID: "ball_5", Name: "蟹柳", Category: "丸子类", Price: 20, Emoji: "🦀", CookingTime: 35000, Description: "鲜美蟹柳", Spiciness: 1},

	{ID: "staple_1", Name: "宽粉", Category: "主食", Price: 8, Emoji: "🍜", CookingTime: 60000, Description: "爽滑宽粉", Spiciness: 0},
	{ID: "staple_2", Name: "方便面", Category: "主食", Price: 6, Emoji: "🍝", CookingTime: 180000, Description: "经典方便面", Spiciness: 0},
	{ID: "staple_3", Name: "年糕", Category: "主食", Price: 12, Emoji: "🍘", CookingTime: 50000, Description: "软糯年糕", Spiciness: 0},
	{ID: "staple_4", Name: "米线", Category: "主食", Price: 10, Emoji: "🍜", CookingTime: 45000, Description: "云南米线", Spiciness: 0},
	{ID: "staple_5", Name: "乌冬面", Category: "主食", Price: 14, Emoji: "🍜", CookingTime: 120000, Description: "日式乌冬面", Spiciness: 0},

	{ID: "tofu_1", Name: "嫩豆腐", Category: "豆制品", Price: 8, Emoji: "🧈", CookingTime: 30000, Description: "嫩滑豆腐", Spiciness: 0},
	{ID: "tofu_2", Name: "冻豆腐", Category: "豆制品", Price: 10, Emoji: "🧊", CookingTime: 25000, Description: "多孔冻豆腐，易入味", Spiciness: 0},
	{ID: "tofu_3", Name: "千张", Category: "豆制品", Price: 12, Emoji: "📄", CookingTime: 20000, Description: "薄如纸的千张", Spiciness: 0},
	{ID: "tofu_4", Name: "腐竹", Category: "豆制品", Price: 15, Emoji: "🥢", CookingTime: 35000, Description: "香滑腐竹", Spiciness: 0},
}

var quickMessages = []string{
	"好吃！", "太辣了！", "不够辣！", "再来一盘", "我吃饱了", "慢点吃", "干杯！",
	"这个熟了", "还没熟呢", "别抢我的菜", "帮我夹一下", "蘸料不够了", "加点汤", "火太大了",
	"哈哈哈", "666", "真香！", "我先走了", "等等我", "一起吃",
	"巴适得很！", "安逸！", "莫得问题", "雄起！", "要得",
	"麻辣鲜香", "越吃越想吃", "停不下来", "过瘾！", "正宗！", "地道！",
}
