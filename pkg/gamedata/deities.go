package gamedata

// Deity pairs a deity's name with the skill its Power path grants.
// Centralizing this keeps level-up rewards deterministic instead of
// trusting the narrator to remember them.
type Deity struct {
	Name             string `json:"name"`
	PowerPathSkillID string `json:"power_path_skill_id"`
}

var deities = map[string]Deity{
	"Khaos, Đấng Hỗn Mang": {
		Name:             "Khaos, Đấng Hỗn Mang",
		PowerPathSkillID: "chaos_unpredictable_strike",
	},
	"Aethel, Người Dệt Hư Không": {
		Name:             "Aethel, Người Dệt Hư Không",
		PowerPathSkillID: "aethel_veil_of_shadows",
	},
	"Lithos, Ý Chí Của Đá": {
		Name:             "Lithos, Ý Chí Của Đá",
		PowerPathSkillID: "lithos_earthen_armor",
	},
	"Sylvian": {
		Name:             "Sylvian",
		PowerPathSkillID: "sylvian_healing_embrace",
	},
	"Gro-goroth": {
		Name:             "Gro-goroth",
		PowerPathSkillID: "gro_goroth_blood_frenzy",
	},
	"Alll-mer": {
		Name:             "Alll-mer",
		PowerPathSkillID: "alll_mer_holy_smite",
	},
}

// AllDeities lists every deity a character can hold faith in, in
// presentation order.
var AllDeities = []string{
	"Sylvian",
	"Gro-goroth",
	"Alll-mer",
	"Khaos, Đấng Hỗn Mang",
	"Aethel, Người Dệt Hư Không",
	"Lithos, Ý Chí Của Đá",
}

// DeityByName looks up a deity's static record.
func DeityByName(name string) (Deity, bool) {
	d, ok := deities[name]
	return d, ok
}
