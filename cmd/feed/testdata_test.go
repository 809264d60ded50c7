package feed

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<SmgData>
  <SysInfo>
    <SysAuthor>SMG</SysAuthor>
    <SysPubdate>2024-01-01 10:00</SysPubdate>
    <SysLanguage>English</SysLanguage>
  </SysInfo>
  <Custom>
    <TodaySituation>
      A ridge of high pressure covers southern China.
    </TodaySituation>
    <WeatherForecast>
      <ValidFor>2024-01-02</ValidFor>
      <WeatherDescription>Sunny periods.</WeatherDescription>
      <AstronomicalTide>High tide 05:12</AstronomicalTide>
    </WeatherForecast>
    <WeatherForecast>
      <ValidFor>2024-01-03</ValidFor>
      <WeatherDescription>Cloudy with {date} braces.</WeatherDescription>
      <AstronomicalTide>NIL</AstronomicalTide>
    </WeatherForecast>
    <WeatherForecast>
      <Other>ignored</Other>
    </WeatherForecast>
  </Custom>
</SmgData>`
