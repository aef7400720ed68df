package schema

// Companies is the seed catalog for the companies table, sourced from the
// CodeTop company list.
var Companies = []CompanySeed{
	{Name: "bytedance", DisplayName: "字节跳动", Industry: "Technology"},
	{Name: "microsoft", DisplayName: "微软", Industry: "Technology"},
	{Name: "meituan", DisplayName: "美团", Industry: "Technology"},
	{Name: "alibaba", DisplayName: "阿里巴巴", Industry: "Technology"},
	{Name: "kuaishou", DisplayName: "快手", Industry: "Technology"},
	{Name: "tencent", DisplayName: "腾讯", Industry: "Technology"},
	{Name: "yuanfudao", DisplayName: "猿辅导", Industry: "Education"},
	{Name: "baidu", DisplayName: "百度", Industry: "Technology"},
	{Name: "didi", DisplayName: "滴滴", Industry: "Transportation"},
	{Name: "jd", DisplayName: "京东", Industry: "E-commerce"},
	{Name: "huawei", DisplayName: "华为", Industry: "Technology"},
	{Name: "pdd", DisplayName: "拼多多", Industry: "E-commerce"},
	{Name: "netease", DisplayName: "网易", Industry: "Technology"},
	{Name: "xiaomi", DisplayName: "小米", Industry: "Technology"},
	{Name: "shangtang", DisplayName: "商汤", Industry: "AI"},
	{Name: "megvii", DisplayName: "旷视", Industry: "AI"},
	{Name: "amazon", DisplayName: "亚马逊", Industry: "Technology"},
	{Name: "shopee", DisplayName: "虾皮", Industry: "E-commerce"},
	{Name: "tusimple", DisplayName: "图森", Industry: "Autonomous Driving"},
	{Name: "ctrip", DisplayName: "携程", Industry: "Travel"},
	{Name: "bilibili", DisplayName: "bilibili", Industry: "Entertainment"},
	{Name: "xiaohongshu", DisplayName: "小红书", Industry: "Social Media"},
}

// Departments is the seed catalog for the departments table.
var Departments = []DepartmentSeed{
	{Name: "backend", DisplayName: "后端", Description: "Backend development"},
	{Name: "frontend", DisplayName: "前端", Description: "Frontend development"},
	{Name: "client", DisplayName: "客户端", Description: "Mobile/Desktop client development"},
	{Name: "algorithm", DisplayName: "算法", Description: "Algorithm and data science"},
	{Name: "data", DisplayName: "数据研发", Description: "Data engineering and analytics"},
	{Name: "qa", DisplayName: "测试", Description: "Quality assurance and testing"},
	{Name: "swe", DisplayName: "Software Engineer", Description: "General software engineering"},
}

// CompanyMultipliers scales global frequency scores per company, modeling how
// actively each company interviews. Unlisted companies fall back to
// DefaultEntityMultiplier.
var CompanyMultipliers = map[string]float64{
	"bytedance":   1.2,
	"alibaba":     1.1,
	"tencent":     1.15,
	"microsoft":   0.9,
	"amazon":      0.8,
	"meituan":     1.05,
	"kuaishou":    1.0,
	"baidu":       0.95,
	"huawei":      1.0,
	"jd":          0.9,
	"didi":        0.85,
	"pdd":         1.1,
	"xiaomi":      0.9,
	"netease":     0.85,
	"shopee":      0.8,
	"bilibili":    0.75,
	"xiaohongshu": 0.7,
}

// DepartmentMultipliers scales company frequency scores per department.
// Algorithm-heavy departments ask more of these problems than QA or frontend.
var DepartmentMultipliers = map[string]float64{
	"backend":   1.0,
	"frontend":  0.7,
	"client":    0.8,
	"algorithm": 1.3,
	"data":      1.1,
	"qa":        0.6,
	"swe":       0.9,
}

// TagRules are the ordered keyword-to-tag inference rules applied to problem
// titles that carry no authoritative tag list. Evaluation order matters:
// later rules still run after an earlier match, so a title can collect
// several tags, and duplicates are possible. This is a best-effort heuristic,
// not a classifier.
var TagRules = []TagRule{
	{Keywords: []string{"数组", "最大", "最小", "第K个", "合并", "排序"}, Tag: "数组"},
	{Keywords: []string{"字符串", "子串", "回文"}, Tag: "字符串"},
	{Keywords: []string{"链表", "反转", "合并"}, Tag: "链表"},
	{Keywords: []string{"二叉树", "树", "遍历"}, Tag: "树"},
	{Keywords: []string{"哈希", "LRU", "缓存"}, Tag: "哈希表"},
	{Keywords: []string{"搜索", "查找", "旋转"}, Tag: "二分查找"},
	{Keywords: []string{"岛屿", "图"}, Tag: "深度优先搜索"},
	{Keywords: []string{"层序", "层次"}, Tag: "广度优先搜索"},
	{Keywords: []string{"排列", "组合"}, Tag: "回溯算法"},
	{Keywords: []string{"动态", "最优", "最长", "最大和"}, Tag: "动态规划"},
	{Keywords: []string{"栈", "括号"}, Tag: "栈"},
	{Keywords: []string{"快速排序", "排序"}, Tag: "排序"},
	{Keywords: []string{"双指针", "三数之和", "两数之和"}, Tag: "双指针"},
}

// Default tags used when no keyword rule matches a title.
const (
	EasyFallbackTag   = "基础算法"
	MediumFallbackTag = "算法"
	HardFallbackTag   = "高级算法"
)

// GlobalFrequencies is the fixture of the top-100 problems with their global
// frequency scores, captured from the CodeTop API. The problem IDs match the
// insertion order of the problems table, so rank equals problem ID here.
var GlobalFrequencies = []FrequencySample{
	{1, 976}, {2, 790}, {3, 694}, {4, 545}, {5, 454}, {6, 426}, {7, 349}, {8, 316}, {9, 304}, {10, 296},
	{11, 285}, {12, 285}, {13, 281}, {14, 276}, {15, 270}, {16, 263}, {17, 262}, {18, 252}, {19, 247}, {20, 246},
	{21, 243}, {22, 239}, {23, 230}, {24, 229}, {25, 219}, {26, 218}, {27, 209}, {28, 208}, {29, 207}, {30, 202},
	{31, 199}, {32, 198}, {33, 195}, {34, 190}, {35, 189}, {36, 188}, {37, 186}, {38, 185}, {39, 182}, {40, 180},
	{41, 178}, {42, 177}, {43, 175}, {44, 173}, {45, 171}, {46, 170}, {47, 168}, {48, 166}, {49, 165}, {50, 163},
	{51, 161}, {52, 160}, {53, 158}, {54, 156}, {55, 155}, {56, 153}, {57, 151}, {58, 150}, {59, 148}, {60, 146},
	{61, 145}, {62, 143}, {63, 141}, {64, 140}, {65, 138}, {66, 136}, {67, 135}, {68, 133}, {69, 131}, {70, 130},
	{71, 128}, {72, 126}, {73, 125}, {74, 123}, {75, 121}, {76, 120}, {77, 118}, {78, 116}, {79, 115}, {80, 113},
	{81, 111}, {82, 110}, {83, 108}, {84, 106}, {85, 105}, {86, 103}, {87, 101}, {88, 100}, {89, 98}, {90, 96},
	{91, 95}, {92, 93}, {93, 91}, {94, 90}, {95, 88}, {96, 86}, {97, 85}, {98, 83}, {99, 81}, {100, 79},
}
