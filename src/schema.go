package src

// SchemaDescription is the plain-English database reference embedded in
// the SQL generation system prompt.
const SchemaDescription = "You have access to a SQLite database with MLB batting statistics.\n\n" +
	"## Tables\n\n" +
	"### players\n" +
	"- player_id (TEXT, primary key) — unique FanGraphs ID\n" +
	"- name (TEXT) — player's full name (e.g., \"Aaron Judge\")\n" +
	"- team (TEXT) — most recent team abbreviation (e.g., \"NYY\", \"LAD\")\n\n" +
	"### season_batting_stats\n" +
	"- player_id (TEXT) — references players table\n" +
	"- season (INTEGER) — year (e.g., 2024)\n" +
	"- team (TEXT) — team abbreviation for that season\n" +
	"- age (INTEGER) — player's age during that season\n" +
	"- games (INTEGER) — games played (G)\n" +
	"- plate_appearances (INTEGER) — total plate appearances (PA)\n" +
	"- at_bats (INTEGER) — at bats (AB)\n" +
	"- hits (INTEGER) — hits (H)\n" +
	"- doubles (INTEGER) — doubles (2B)\n" +
	"- triples (INTEGER) — triples (3B)\n" +
	"- home_runs (INTEGER) — home runs (HR)\n" +
	"- runs (INTEGER) — runs scored (R)\n" +
	"- rbi (INTEGER) — runs batted in (RBI)\n" +
	"- stolen_bases (INTEGER) — stolen bases (SB)\n" +
	"- caught_stealing (INTEGER) — caught stealing (CS)\n" +
	"- walks (INTEGER) — walks/bases on balls (BB)\n" +
	"- strikeouts (INTEGER) — strikeouts (SO)\n" +
	"- hit_by_pitch (INTEGER) — hit by pitch (HBP)\n" +
	"- sacrifice_flies (INTEGER) — sacrifice flies (SF)\n" +
	"- intentional_walks (INTEGER) — intentional walks (IBB)\n" +
	"- batting_avg (REAL) — batting average (AVG)\n" +
	"- obp (REAL) — on-base percentage (OBP)\n" +
	"- slg (REAL) — slugging percentage (SLG)\n" +
	"- ops (REAL) — on-base plus slugging (OPS)\n" +
	"- iso (REAL) — isolated power (ISO = SLG - AVG)\n" +
	"- babip (REAL) — batting average on balls in play (BABIP)\n" +
	"- wrc_plus (INTEGER) — weighted runs created plus (wRC+), league-adjusted (100 = average)\n" +
	"- war (REAL) — wins above replacement (WAR, FanGraphs version)\n\n" +
	"### platoon_splits\n" +
	"- player_id (TEXT) — references players table\n" +
	"- season (INTEGER) — year\n" +
	"- split (TEXT) — either \"vs_LHP\" (vs left-handed pitchers) or \"vs_RHP\" (vs right-handed pitchers)\n" +
	"- plate_appearances (INTEGER) — PA in that split\n" +
	"- at_bats (INTEGER) — AB in that split\n" +
	"- hits (INTEGER) — hits\n" +
	"- doubles (INTEGER) — doubles\n" +
	"- triples (INTEGER) — triples\n" +
	"- home_runs (INTEGER) — home runs\n" +
	"- rbi (INTEGER) — RBI\n" +
	"- walks (INTEGER) — walks\n" +
	"- strikeouts (INTEGER) — strikeouts\n" +
	"- batting_avg (REAL) — batting average\n" +
	"- obp (REAL) — on-base percentage\n" +
	"- slg (REAL) — slugging percentage\n" +
	"- ops (REAL) — OPS\n" +
	"- iso (REAL) — isolated power\n" +
	"- babip (REAL) — BABIP\n" +
	"- wrc_plus (INTEGER) — wRC+\n\n" +
	"### game_batting_logs\n" +
	"- player_id (TEXT) — references players table\n" +
	"- season (INTEGER) — year\n" +
	"- date (TEXT) — game date in YYYY-MM-DD format\n" +
	"- opponent (TEXT) — opponent team abbreviation\n" +
	"- plate_appearances, at_bats, hits, doubles, triples, home_runs, runs, rbi, walks, strikeouts (INTEGER)\n" +
	"- batting_avg, obp, slg, ops (REAL) — per-game rates\n\n" +
	"### streaks\n" +
	"Precomputed performance streaks detected via change-point analysis. Each row is a continuous stretch of games where a player's performance was consistent.\n" +
	"- player_id (TEXT) — references players table\n" +
	"- season (INTEGER) — year\n" +
	"- start_date (TEXT) — first game date of the streak\n" +
	"- end_date (TEXT) — last game date of the streak\n" +
	"- num_games (INTEGER) — number of games in the streak\n" +
	"- batting_avg, obp, slg, ops (REAL) — aggregate stats during the streak\n" +
	"- home_runs, hits, at_bats, walks, strikeouts (INTEGER) — counting stats during the streak\n" +
	"- performance (TEXT) — \"hot\", \"cold\", or \"average\" relative to the player's overall season\n\n" +
	"### streaks_sensitive\n" +
	"Precomputed sensitive streaks for players who had NO change points in the primary detection (penalty=3). These are subtler performance shifts found with a lower threshold (penalty=1.5), filtered to 7-30 game segments. Use this as a fallback when the streaks table returns only a single \"average\" segment for a player.\n" +
	"- player_id (TEXT) — references players table\n" +
	"- season (INTEGER) — year\n" +
	"- start_date (TEXT) — first game date of the streak\n" +
	"- end_date (TEXT) — last game date of the streak\n" +
	"- num_games (INTEGER) — number of games in the streak (7-30)\n" +
	"- batting_avg, obp, slg, ops (REAL) — aggregate stats during the streak\n" +
	"- home_runs, hits, at_bats, walks, strikeouts (INTEGER) — counting stats during the streak\n" +
	"- performance (TEXT) — \"hot\", \"cold\", or \"average\" relative to the player's overall season\n" +
	"- season_ops (REAL) — the player's overall season OPS for context\n\n" +
	"## Currently Available Data\n" +
	"- 2024 and 2025 seasons\n" +
	"- Platoon splits (vs LHP and vs RHP) for both seasons\n" +
	"- Game-level batting logs for qualified batters (400+ PA)\n" +
	"- Precomputed streak segments for qualified batters (streaks table)\n" +
	"- Sensitive fallback streaks for players with no dramatic shifts (streaks_sensitive table)\n\n" +
	"## Important Notes\n" +
	"- Player names are stored as full names: \"Aaron Judge\", \"Shohei Ohtani\", etc.\n" +
	"- Use LIKE with '%' for fuzzy name matching when the user gives a partial name\n" +
	"- Team abbreviations: NYY, LAD, BOS, ATL, HOU, etc.\n" +
	"- For rate stats (AVG, OBP, SLG, OPS), use the precomputed columns rather than calculating from raw counts\n" +
	"- For counting stats (HR, RBI, etc.), use the integer columns directly\n" +
	"- wRC+ of 100 is league average; higher is better\n" +
	"- WAR: 0-1 = replacement level, 2-3 = solid starter, 4-5 = all-star, 6+ = MVP caliber\n" +
	"- For split queries (vs lefties/righties), JOIN with platoon_splits using split = 'vs_LHP' or split = 'vs_RHP'\n" +
	"- If the user says \"last year\" or \"last season\", assume 2024. If they say \"this year\" or \"this season\", assume 2025.\n"
